package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", date.Format(time.DateOnly))

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestCivilDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	civil := CivilDate(local)

	assert.Equal(t, time.UTC, civil.Location())
	assert.Equal(t, "2024-03-09", civil.Format(time.DateOnly))
	assert.Zero(t, civil.Hour())
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateJobID(t *testing.T) {
	id := GenerateJobID("backfill")
	assert.True(t, strings.HasPrefix(id, "backfill_"))
	assert.Len(t, id, len("backfill_")+10)
}
