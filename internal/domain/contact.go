package domain

import "time"

type Contact struct {
	ID                    int64                `json:"id"`
	AccountID             string               `json:"account_id"`
	ExternalID            string               `json:"external_id"`
	Name                  string               `json:"name"`
	Email                 string               `json:"email"`
	Phone                 string               `json:"phone"`
	AttributionSource     *AttributionSnapshot `json:"attribution_source"`
	LastAttributionSource *AttributionSnapshot `json:"last_attribution_source"`
	CRMCreatedAt          time.Time            `json:"crm_created_at"`
	LocalDate             *time.Time           `json:"local_date"`
}

// Snapshots retorna os snapshots de atribuição não nulos (primeiro toque antes do último)
func (c *Contact) Snapshots() []*AttributionSnapshot {
	snapshots := make([]*AttributionSnapshot, 0, 2)
	if c.AttributionSource != nil {
		snapshots = append(snapshots, c.AttributionSource)
	}
	if c.LastAttributionSource != nil {
		snapshots = append(snapshots, c.LastAttributionSource)
	}
	return snapshots
}
