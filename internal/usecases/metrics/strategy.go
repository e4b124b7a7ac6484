package metrics

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type aggregate struct {
	table    domain.BucketTable
	function domain.AggregateFunction
	column   string
	outcomes []string
}

// strategy é uma agregação simples ou, com denominator, uma razão em percentual
type strategy struct {
	numerator   aggregate
	denominator *aggregate
	userColumn  string
}

var showedOutcomes = []string{domain.OutcomeShowed, domain.OutcomeClosed}

var (
	countDials        = aggregate{table: domain.TableDials, function: domain.AggregateCount}
	countConnected    = aggregate{table: domain.TableDials, function: domain.AggregateCount, outcomes: []string{domain.OutcomeConnected}}
	countAppointments = aggregate{table: domain.TableAppointments, function: domain.AggregateCount}
	countShowed       = aggregate{table: domain.TableAppointments, function: domain.AggregateCount, outcomes: showedOutcomes}
	countClosed       = aggregate{table: domain.TableAppointments, function: domain.AggregateCount, outcomes: []string{domain.OutcomeClosed}}
	sumCash           = aggregate{table: domain.TableAppointments, function: domain.AggregateSum, column: "cash_collected"}
	countDiscoveries  = aggregate{table: domain.TableDiscoveries, function: domain.AggregateCount}
	countQualified    = aggregate{table: domain.TableDiscoveries, function: domain.AggregateCount, outcomes: []string{domain.OutcomeQualified}}
	countContacts     = aggregate{table: domain.TableContacts, function: domain.AggregateCount}
)

const (
	setterColumn   = "setter_user_id"
	salesRepColumn = "sales_rep_user_id"
)

var strategies = map[string]strategy{
	"dials.count":             {numerator: countDials},
	"dials.connected":         {numerator: countConnected},
	"dials.connect_rate":      {numerator: countConnected, denominator: &countDials},
	"appointments.count":      {numerator: countAppointments},
	"appointments.showed":     {numerator: countShowed},
	"appointments.show_rate":  {numerator: countShowed, denominator: &countAppointments},
	"appointments.closed":     {numerator: countClosed},
	"appointments.close_rate": {numerator: countClosed, denominator: &countShowed},
	"appointments.cash":       {numerator: sumCash},
	"discoveries.count":       {numerator: countDiscoveries},
	"discoveries.qualified":   {numerator: countQualified},
	"contacts.count":          {numerator: countContacts},

	"setter.dials":        {numerator: countDials, userColumn: setterColumn},
	"setter.appointments": {numerator: countAppointments, userColumn: setterColumn},
	"setter.connect_rate": {numerator: countConnected, denominator: &countDials, userColumn: setterColumn},
	"rep.appointments":    {numerator: countAppointments, userColumn: salesRepColumn},
	"rep.closes":          {numerator: countClosed, userColumn: salesRepColumn},
	"rep.close_rate":      {numerator: countClosed, denominator: &countShowed, userColumn: salesRepColumn},
	"rep.cash":            {numerator: sumCash, userColumn: salesRepColumn},
	"rep.discoveries":     {numerator: countDiscoveries, userColumn: salesRepColumn},
}

func (s strategy) query(a aggregate, scope domain.MetricScope, dateRange domain.DateRange) domain.AggregateQuery {
	q := domain.AggregateQuery{
		Table:     a.table,
		Function:  a.function,
		Column:    a.column,
		Outcomes:  a.outcomes,
		AccountID: scope.AccountID,
		Range:     dateRange,
	}
	if s.userColumn != "" {
		q.UserColumn = s.userColumn
		q.UserID = scope.UserID
	}
	return q
}

// compute executa a estratégia. Razões são devolvidas em percentual e valem 0 quando o denominador é 0.
func (s strategy) compute(ctx context.Context, repo repository.MetricRepository, scope domain.MetricScope, dateRange domain.DateRange) (float64, error) {
	numerator, err := repo.Aggregate(ctx, s.query(s.numerator, scope, dateRange))
	if err != nil {
		return 0, err
	}

	if s.denominator == nil {
		return numerator, nil
	}

	denominator, err := repo.Aggregate(ctx, s.query(*s.denominator, scope, dateRange))
	if err != nil {
		return 0, err
	}

	if denominator == 0 {
		return 0, nil
	}

	return numerator / denominator * 100, nil
}
