package domain

import (
	"fmt"
	"time"
)

type ActivityKind string

const (
	ActivityDial        ActivityKind = "dial"
	ActivityAppointment ActivityKind = "appointment"
	ActivityDiscovery   ActivityKind = "discovery"
)

// ActivityKinds lista os tipos de atividade na ordem em que os jobs os percorrem
var ActivityKinds = []ActivityKind{ActivityDial, ActivityAppointment, ActivityDiscovery}

// Resultados conhecidos por tipo de atividade
const (
	OutcomeConnected   = "connected"
	OutcomeNoAnswer    = "no_answer"
	OutcomeVoicemail   = "voicemail"
	OutcomeWrongNumber = "wrong_number"

	OutcomeScheduled   = "scheduled"
	OutcomeShowed      = "showed"
	OutcomeNoShow      = "no_show"
	OutcomeCancelled   = "cancelled"
	OutcomeRescheduled = "rescheduled"
	OutcomeClosed      = "closed"

	OutcomeQualified    = "qualified"
	OutcomeDisqualified = "disqualified"
)

func (k ActivityKind) Table() BucketTable {
	switch k {
	case ActivityDial:
		return TableDials
	case ActivityAppointment:
		return TableAppointments
	case ActivityDiscovery:
		return TableDiscoveries
	}
	return ""
}

// Assignees retorna os papéis de responsável que o tipo de atividade carrega
func (k ActivityKind) Assignees() []Role {
	if k == ActivityDial {
		return []Role{RoleSetter}
	}
	return []Role{RoleSetter, RoleSalesRep}
}

// AssigneeColumns descreve as colunas de nome livre, id do CRM e id da plataforma de um papel
type AssigneeColumns struct {
	Name      string
	CRMUserID string
	UserID    string
}

func ColumnsFor(role Role) (AssigneeColumns, error) {
	switch role {
	case RoleSetter:
		return AssigneeColumns{Name: "setter", CRMUserID: "setter_crm_user_id", UserID: "setter_user_id"}, nil
	case RoleSalesRep:
		return AssigneeColumns{Name: "sales_rep", CRMUserID: "sales_rep_crm_user_id", UserID: "sales_rep_user_id"}, nil
	}
	return AssigneeColumns{}, fmt.Errorf("role %q has no assignee columns", role)
}

// ActivityRecord é uma linha de discagem, agendamento ou discovery vinda do CRM
type ActivityRecord struct {
	ID                int64        `json:"id"`
	Kind              ActivityKind `json:"kind"`
	AccountID         string       `json:"account_id"`
	ContactID         *int64       `json:"contact_id"`
	Setter            string       `json:"setter"`
	SetterCRMUserID   *string      `json:"setter_crm_user_id"`
	SetterUserID      *string      `json:"setter_user_id"`
	SalesRep          string       `json:"sales_rep"`
	SalesRepCRMUserID *string      `json:"sales_rep_crm_user_id"`
	SalesRepUserID    *string      `json:"sales_rep_user_id"`
	OccurredAt        time.Time    `json:"occurred_at"`
	Outcome           string       `json:"outcome"`
	CashCollected     float64      `json:"cash_collected"`
	LocalDate         *time.Time   `json:"local_date"`
	LocalWeek         *time.Time   `json:"local_week"`
	LocalMonth        *time.Time   `json:"local_month"`
}

// Assignee devolve nome, id do CRM e id da plataforma do papel informado
func (r *ActivityRecord) Assignee(role Role) (name string, crmUserID, userID *string) {
	if role == RoleSalesRep {
		return r.SalesRep, r.SalesRepCRMUserID, r.SalesRepUserID
	}
	return r.Setter, r.SetterCRMUserID, r.SetterUserID
}
