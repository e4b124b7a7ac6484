package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	assert.Len(t, registry.List(), 20)
	assert.Same(t, registry, DefaultRegistry())

	def, ok := registry.Lookup("cash_collected")
	assert.True(t, ok)
	assert.Equal(t, domain.TargetCurrency, def.TargetType)
	assert.Equal(t, domain.AppliesToAccount, def.AppliesTo)

	def, ok = registry.Lookup("setter_connect_rate")
	assert.True(t, ok)
	assert.Equal(t, domain.AppliesToUser, def.AppliesTo)
	assert.Equal(t, domain.TargetRatio, def.TargetType)

	_, ok = registry.Lookup("nonexistent_metric")
	assert.False(t, ok)

	for _, def := range registry.List() {
		strat := strategies[def.ComputeKey]
		if def.AppliesTo == domain.AppliesToUser {
			assert.NotEmpty(t, strat.userColumn, def.Name)
		} else {
			assert.Empty(t, strat.userColumn, def.Name)
		}
	}
}

func TestNewRegistry(t *testing.T) {
	def := domain.MetricDefinition{Name: "total_dials", ComputeKey: "dials.count"}

	assert.Panics(t, func() { NewRegistry(def, def) })
	assert.Panics(t, func() { NewRegistry(domain.MetricDefinition{Name: "x", ComputeKey: "missing"}) })
	assert.Panics(t, func() { NewRegistry(domain.MetricDefinition{ComputeKey: "dials.count"}) })

	registry := NewRegistry(def)
	list := registry.List()
	list[0].Name = "changed"

	got, ok := registry.Lookup("total_dials")
	assert.True(t, ok)
	assert.Equal(t, "total_dials", got.Name)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		targetType domain.TargetType
		value      float64
		want       string
	}{
		{domain.TargetCount, 42, "42"},
		{domain.TargetCount, 0, "0"},
		{domain.TargetCurrency, 1234.5, "$1,234.50"},
		{domain.TargetCurrency, 0, "$0.00"},
		{domain.TargetCurrency, -80, "-$80.00"},
		{domain.TargetRatio, 62.5, "62.5%"},
		{domain.TargetRatio, 100, "100.0%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.targetType, tt.value))
	}

	assert.Equal(t, "+25.0%", FormatPercentChange(25))
	assert.Equal(t, "-12.5%", FormatPercentChange(-12.5))
}
