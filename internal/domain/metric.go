package domain

import (
	"time"
)

type AppliesTo string

const (
	AppliesToAccount AppliesTo = "account"
	AppliesToUser    AppliesTo = "user"
)

type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

type TargetType string

const (
	TargetCount    TargetType = "count"
	TargetCurrency TargetType = "currency"
	TargetRatio    TargetType = "ratio"
)

type MetricDefinition struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	AppliesTo   AppliesTo  `json:"applies_to"`
	PeriodType  PeriodType `json:"period_type"`
	TargetType  TargetType `json:"target_type"`
	ComputeKey  string     `json:"compute_key"`
}

// DateRange é um intervalo fechado de datas locais
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Days retorna quantos dias o intervalo cobre, incluindo as duas pontas
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Previous retorna o intervalo de mesmo tamanho imediatamente anterior
func (r DateRange) Previous() DateRange {
	end := r.Start.AddDate(0, 0, -1)
	return DateRange{
		Start: end.AddDate(0, 0, -(r.Days() - 1)),
		End:   end,
	}
}

type MetricScope struct {
	AccountID string `json:"account_id"`
	UserID    string `json:"user_id,omitempty"`
}

type CalculateOptions struct {
	ComparisonRange *DateRange
	ComparePrevious bool
}

type AggregateFunction string

const (
	AggregateCount AggregateFunction = "count"
	AggregateSum   AggregateFunction = "sum"
)

// AggregateQuery é uma agregação sobre uma tabela filtrada por data local
type AggregateQuery struct {
	Table      BucketTable
	Function   AggregateFunction
	Column     string
	Outcomes   []string
	AccountID  string
	UserColumn string
	UserID     string
	Range      DateRange
}

type MetricComparison struct {
	Range                DateRange `json:"range"`
	PreviousValue        float64   `json:"previous_value"`
	PreviousDisplayValue string    `json:"previous_display_value"`
	Delta                float64   `json:"delta"`
	PercentChange        *float64  `json:"percent_change"`
	DisplayPercentChange string    `json:"display_percent_change,omitempty"`
}

type MetricResult struct {
	Metric          string            `json:"metric"`
	Label           string            `json:"label"`
	TargetType      TargetType        `json:"target_type"`
	Scope           MetricScope       `json:"scope"`
	Range           DateRange         `json:"range"`
	Value           float64           `json:"value"`
	DisplayValue    string            `json:"display_value"`
	Comparison      *MetricComparison `json:"comparison,omitempty"`
	ExecutedAt      time.Time         `json:"executed_at"`
	ExecutionTimeMs int64             `json:"execution_time_ms"`
}
