package domain

import "time"

type ResolutionKind string

const (
	Resolved   ResolutionKind = "resolved"
	Ambiguous  ResolutionKind = "ambiguous"
	Unresolved ResolutionKind = "unresolved"
)

// Códigos de motivo gravados no relatório de backfill
const (
	ReasonAlreadySet   = "already_set"
	ReasonResolvedCRM  = "resolved_crm_id"
	ReasonResolvedName = "resolved_name"
	ReasonAmbiguous    = "ambiguous_name"
	ReasonNoMatch      = "no_match"
	ReasonEmptyName    = "empty_name"
	ReasonWriteFailed  = "write_failed"
	ReasonLostRace     = "filled_concurrently"
	ReasonBatchFailed  = "batch_failed"
)

// ResolutionOutcome é o resultado marcado da resolução de um nome livre
type ResolutionOutcome struct {
	Kind       ResolutionKind `json:"kind"`
	UserID     string         `json:"user_id,omitempty"`
	Candidates []string       `json:"candidates,omitempty"`
	Reason     string         `json:"reason"`
}

func NewResolved(userID, reason string) ResolutionOutcome {
	return ResolutionOutcome{Kind: Resolved, UserID: userID, Reason: reason}
}

func NewAmbiguous(candidates []string) ResolutionOutcome {
	return ResolutionOutcome{Kind: Ambiguous, Candidates: candidates, Reason: ReasonAmbiguous}
}

func NewUnresolved(reason string) ResolutionOutcome {
	return ResolutionOutcome{Kind: Unresolved, Reason: reason}
}

// AssigneeObservation agrega as ocorrências de um responsável em uma tabela de atividade
type AssigneeObservation struct {
	Name       string
	UserID     *string
	CRMUserID  *string
	Count      int64
	LastSeenAt time.Time
}

// UnresolvedAssignee é uma linha de atividade sem id da plataforma para um papel
type UnresolvedAssignee struct {
	RecordID  int64
	Name      string
	CRMUserID *string
}

// CRMUser é o resumo por usuário do CRM usado no fluxo de convites pendentes
type CRMUser struct {
	AccountID       string     `json:"account_id"`
	CRMUserID       string     `json:"crm_user_id"`
	Name            string     `json:"name"`
	Role            Role       `json:"role"`
	UserID          *string    `json:"user_id"`
	ActivityCount   int64      `json:"activity_count"`
	InvitationCount int        `json:"invitation_count"`
	LastInvitedAt   *time.Time `json:"last_invited_at"`
	LastActivityAt  *time.Time `json:"last_activity_at"`
}

type Candidate struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Role            Role       `json:"role"`
	Invited         bool       `json:"invited"`
	UserID          *string    `json:"user_id,omitempty"`
	CRMUserID       *string    `json:"crm_user_id,omitempty"`
	ActivityCount   int64      `json:"activity_count"`
	InvitationCount int        `json:"invitation_count"`
	LastSeenAt      *time.Time `json:"last_seen_at,omitempty"`
}

type CandidateSet struct {
	Invited   []Candidate `json:"invited"`
	Uninvited []Candidate `json:"uninvited"`
}

// CandidatesResponse segue o contrato getCandidates do painel
type CandidatesResponse struct {
	Reps    []Candidate `json:"reps"`
	Setters []Candidate `json:"setters"`
}

type InvitationRequest struct {
	AccountID string `json:"-"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CRMUserID string `json:"crm_user_id"`
}

type BackfillReason struct {
	Table    BucketTable `json:"table"`
	Role     Role        `json:"role"`
	RecordID int64       `json:"record_id,omitempty"`
	BatchKey string      `json:"batch_key,omitempty"`
	Name     string      `json:"name,omitempty"`
	Code     string      `json:"code"`
}

type BackfillReport struct {
	JobID         string           `json:"job_id"`
	AccountID     string           `json:"account_id"`
	Processed     int              `json:"processed"`
	Succeeded     int              `json:"succeeded"`
	Ambiguous     int              `json:"ambiguous"`
	Unresolved    int              `json:"unresolved"`
	Failed        int              `json:"failed"`
	FailedBatches int              `json:"failed_batches"`
	Reasons       []BackfillReason `json:"reasons"`
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at"`
}

// RoleCount conta as linhas atribuídas a um usuário em cada papel
type RoleCount struct {
	Setter   int64
	SalesRep int64
}

type RoleProposal struct {
	UserID        string `json:"user_id"`
	DisplayName   string `json:"display_name"`
	DeclaredRole  Role   `json:"declared_role"`
	ProposedRole  Role   `json:"proposed_role"`
	SetterCount   int64  `json:"setter_count"`
	SalesRepCount int64  `json:"sales_rep_count"`
}
