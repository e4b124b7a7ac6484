package localdate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		instant  time.Time
		timezone string
		want     domain.LocalBuckets
	}{
		{
			name:     "Noite de sábado em Nova York no dia da mudança de horário",
			instant:  time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC),
			timezone: "America/New_York",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 3, 9),
				LocalWeekStart:  civil(2024, 3, 4),
				LocalMonthStart: civil(2024, 3, 1),
			},
		},
		{
			name:     "Depois da mudança de horário o mesmo relógio já é domingo",
			instant:  time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
			timezone: "America/New_York",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 3, 10),
				LocalWeekStart:  civil(2024, 3, 4),
				LocalMonthStart: civil(2024, 3, 1),
			},
		},
		{
			name:     "Domingo conta como sétimo dia da semana",
			instant:  time.Date(2024, 6, 9, 15, 0, 0, 0, time.UTC),
			timezone: "UTC",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 6, 9),
				LocalWeekStart:  civil(2024, 6, 3),
				LocalMonthStart: civil(2024, 6, 1),
			},
		},
		{
			name:     "Segunda-feira é o início da própria semana",
			instant:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			timezone: "UTC",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 6, 10),
				LocalWeekStart:  civil(2024, 6, 10),
				LocalMonthStart: civil(2024, 6, 1),
			},
		},
		{
			name:     "Fuso adiantado vira o mês e o ano",
			instant:  time.Date(2023, 12, 31, 20, 0, 0, 0, time.UTC),
			timezone: "Asia/Tokyo",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 1, 1),
				LocalWeekStart:  civil(2024, 1, 1),
				LocalMonthStart: civil(2024, 1, 1),
			},
		},
		{
			name:     "Semana que começa no mês anterior",
			instant:  time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
			timezone: "America/Sao_Paulo",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 5, 2),
				LocalWeekStart:  civil(2024, 4, 29),
				LocalMonthStart: civil(2024, 5, 1),
			},
		},
		{
			name:     "Fuso vazio é tratado como UTC",
			instant:  time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC),
			timezone: "",
			want: domain.LocalBuckets{
				LocalDate:       civil(2024, 3, 10),
				LocalWeekStart:  civil(2024, 3, 4),
				LocalMonthStart: civil(2024, 3, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.instant, tt.timezone)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.LocalDate.Location())
		})
	}
}

func TestNormalize_InvalidTimezone(t *testing.T) {
	for _, timezone := range []string{"Mars/Olympus_Mons", "Local", "America/New York"} {
		t.Run(timezone, func(t *testing.T) {
			_, err := Normalize(time.Now(), timezone)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var analyticsErr *domain.AnalyticsError
			require.ErrorAs(t, err, &analyticsErr)
			assert.Equal(t, "VAL_004", analyticsErr.Code)
		})
	}
}

func TestZoneTable(t *testing.T) {
	zones := NewZoneTable("America/New_York", "America/New_York", "Invalid/Zone", "")

	t.Run("Ignora nomes inválidos e repetidos", func(t *testing.T) {
		// UTC é sempre pré-carregado
		assert.Equal(t, 2, zones.Len())
	})

	t.Run("Fuso fora da tabela é carregado sem alterá-la", func(t *testing.T) {
		loc, err := zones.Location("Europe/Lisbon")

		require.NoError(t, err)
		assert.Equal(t, "Europe/Lisbon", loc.String())
		assert.Equal(t, 2, zones.Len())
	})

	t.Run("Mesmo resultado que a função pura", func(t *testing.T) {
		instant := time.Date(2024, 11, 3, 5, 59, 0, 0, time.UTC)

		fromTable, err := zones.Normalize(instant, "America/New_York")
		require.NoError(t, err)

		pure, err := Normalize(instant, "America/New_York")
		require.NoError(t, err)

		assert.Equal(t, pure, fromTable)
	})
}
