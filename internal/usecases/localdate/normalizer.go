package localdate

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ZoneTable guarda as localizações carregadas na inicialização. Depois de criada não é alterada,
// então pode ser lida por vários jobs ao mesmo tempo sem trava.
type ZoneTable struct {
	zones map[string]*time.Location
}

// NewZoneTable carrega os fusos informados, ignorando (com log) os inválidos
func NewZoneTable(timezones ...string) *ZoneTable {
	zones := make(map[string]*time.Location, len(timezones)+1)
	zones[domain.DefaultTimezone] = time.UTC

	for _, name := range timezones {
		if _, ok := zones[name]; ok || name == "" {
			continue
		}

		loc, err := loadLocation(name)
		if err != nil {
			logrus.WithError(err).WithField("timezone", name).Warn("Fuso horário inválido ignorado na tabela de fusos")
			continue
		}
		zones[name] = loc
	}

	return &ZoneTable{zones: zones}
}

// Location resolve o fuso; nomes fora da tabela são carregados sob demanda sem alterá-la
func (z *ZoneTable) Location(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}

	if z != nil {
		if loc, ok := z.zones[timezone]; ok {
			return loc, nil
		}
	}

	loc, err := loadLocation(timezone)
	if err != nil {
		return nil, domain.NewAnalyticsError(
			domain.ErrValidation,
			apiErrors.ErrInvalidTimezone,
			fmt.Sprintf("fuso horário inválido: %q", timezone),
		).Wrap(err)
	}

	return loc, nil
}

// Len retorna quantos fusos foram pré-carregados
func (z *ZoneTable) Len() int {
	return len(z.zones)
}

// Normalize converte o instante nos buckets locais do fuso usando a tabela carregada
func (z *ZoneTable) Normalize(t time.Time, timezone string) (domain.LocalBuckets, error) {
	loc, err := z.Location(timezone)
	if err != nil {
		return domain.LocalBuckets{}, err
	}
	return BucketsIn(t, loc), nil
}

// Normalize converte um instante UTC nos buckets de data local do fuso informado
func Normalize(t time.Time, timezone string) (domain.LocalBuckets, error) {
	return (*ZoneTable)(nil).Normalize(t, timezone)
}

// BucketsIn calcula data, início da semana (segunda-feira) e início do mês no fuso loc
func BucketsIn(t time.Time, loc *time.Location) domain.LocalBuckets {
	day := utils.CivilDate(t.In(loc))

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo fecha a semana
	}

	return domain.LocalBuckets{
		LocalDate:       day,
		LocalWeekStart:  day.AddDate(0, 0, -(weekday - 1)),
		LocalMonthStart: time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
}

func loadLocation(name string) (*time.Location, error) {
	// "Local" depende da máquina que roda o job
	if name == "Local" {
		return nil, fmt.Errorf("unknown time zone %s", name)
	}
	return time.LoadLocation(name)
}
