package domain

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// DefaultTimezone é usado quando a conta não declarou um fuso horário
const DefaultTimezone = "UTC"

type Account struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	BusinessTimezone string        `json:"business_timezone"`
	Status           AccountStatus `json:"status"`
}

// Timezone retorna o fuso horário da conta, com fallback para UTC
func (a *Account) Timezone() string {
	if a == nil || a.BusinessTimezone == "" {
		return DefaultTimezone
	}
	return a.BusinessTimezone
}

type UpdateTimezoneRequest struct {
	AccountID string `json:"-"`
	Timezone  string `json:"timezone"`
}

type UpdateTimezoneResponse struct {
	AccountID       string `json:"account_id"`
	Timezone        string `json:"timezone"`
	RecomputeQueued bool   `json:"recompute_queued"`
}
