package metrics

import (
	"fmt"
	"sync"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Registry é o catálogo imutável de métricas. Depois de criado só é lido,
// então consultas concorrentes não precisam de lock.
type Registry struct {
	definitions map[string]domain.MetricDefinition
	order       []string
}

// NewRegistry monta o catálogo. Nomes repetidos ou estratégias desconhecidas
// são erro de programação e derrubam a aplicação na subida.
func NewRegistry(definitions ...domain.MetricDefinition) *Registry {
	r := &Registry{
		definitions: make(map[string]domain.MetricDefinition, len(definitions)),
		order:       make([]string, 0, len(definitions)),
	}

	for _, def := range definitions {
		if def.Name == "" {
			panic("metrics: métrica sem nome")
		}
		if _, exists := r.definitions[def.Name]; exists {
			panic(fmt.Sprintf("metrics: métrica %q registrada duas vezes", def.Name))
		}
		if _, ok := strategies[def.ComputeKey]; !ok {
			panic(fmt.Sprintf("metrics: estratégia %q da métrica %q não existe", def.ComputeKey, def.Name))
		}

		r.definitions[def.Name] = def
		r.order = append(r.order, def.Name)
	}

	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(catalog...)
})

// DefaultRegistry retorna o catálogo padrão da aplicação
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func (r *Registry) Lookup(name string) (domain.MetricDefinition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// List retorna as definições na ordem de registro
func (r *Registry) List() []domain.MetricDefinition {
	definitions := make([]domain.MetricDefinition, 0, len(r.order))
	for _, name := range r.order {
		definitions = append(definitions, r.definitions[name])
	}
	return definitions
}

var catalog = []domain.MetricDefinition{
	// Conta
	{Name: "total_dials", Label: "Total Dials", Description: "Discagens no período", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "dials.count"},
	{Name: "connected_dials", Label: "Connected Dials", Description: "Discagens atendidas", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "dials.connected"},
	{Name: "dial_connect_rate", Label: "Connect Rate", Description: "Discagens atendidas sobre o total", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodWeek, TargetType: domain.TargetRatio, ComputeKey: "dials.connect_rate"},
	{Name: "total_appointments", Label: "Total Appointments", Description: "Agendamentos no período", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "appointments.count"},
	{Name: "appointments_showed", Label: "Appointments Showed", Description: "Agendamentos em que o lead compareceu", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "appointments.showed"},
	{Name: "show_rate", Label: "Show Rate", Description: "Comparecimentos sobre agendamentos", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodWeek, TargetType: domain.TargetRatio, ComputeKey: "appointments.show_rate"},
	{Name: "appointments_closed", Label: "Appointments Closed", Description: "Agendamentos fechados", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "appointments.closed"},
	{Name: "close_rate", Label: "Close Rate", Description: "Fechamentos sobre comparecimentos", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodWeek, TargetType: domain.TargetRatio, ComputeKey: "appointments.close_rate"},
	{Name: "cash_collected", Label: "Cash Collected", Description: "Valor recebido nos agendamentos", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodMonth, TargetType: domain.TargetCurrency, ComputeKey: "appointments.cash"},
	{Name: "total_discoveries", Label: "Total Discoveries", Description: "Discoveries no período", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "discoveries.count"},
	{Name: "qualified_discoveries", Label: "Qualified Discoveries", Description: "Discoveries qualificadas", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "discoveries.qualified"},
	{Name: "new_contacts", Label: "New Contacts", Description: "Contatos criados no CRM", AppliesTo: domain.AppliesToAccount, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "contacts.count"},

	// Usuário
	{Name: "setter_dials", Label: "Dials", Description: "Discagens do setter", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "setter.dials"},
	{Name: "setter_appointments_set", Label: "Appointments Set", Description: "Agendamentos marcados pelo setter", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "setter.appointments"},
	{Name: "setter_connect_rate", Label: "Connect Rate", Description: "Discagens atendidas do setter", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodWeek, TargetType: domain.TargetRatio, ComputeKey: "setter.connect_rate"},
	{Name: "rep_appointments", Label: "Appointments", Description: "Agendamentos do closer", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "rep.appointments"},
	{Name: "rep_closes", Label: "Closes", Description: "Fechamentos do closer", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "rep.closes"},
	{Name: "rep_close_rate", Label: "Close Rate", Description: "Fechamentos sobre comparecimentos do closer", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodWeek, TargetType: domain.TargetRatio, ComputeKey: "rep.close_rate"},
	{Name: "rep_cash_collected", Label: "Cash Collected", Description: "Valor recebido pelo closer", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodMonth, TargetType: domain.TargetCurrency, ComputeKey: "rep.cash"},
	{Name: "rep_discoveries", Label: "Discoveries", Description: "Discoveries conduzidas pelo closer", AppliesTo: domain.AppliesToUser, PeriodType: domain.PeriodDay, TargetType: domain.TargetCount, ComputeKey: "rep.discoveries"},
}
