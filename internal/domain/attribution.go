package domain

import (
	"time"
)

// Quality é o nível de confiança de um vínculo sessão → contato
type Quality string

const (
	QualityNone      Quality = "none"
	QualityHeuristic Quality = "heuristic"
	QualityUTM       Quality = "utm"
	QualityExact     Quality = "exact"
)

var qualityRank = map[Quality]int{
	QualityNone:      0,
	QualityHeuristic: 1,
	QualityUTM:       2,
	QualityExact:     3,
}

// Qualities em ordem crescente de confiança
var Qualities = []Quality{QualityNone, QualityHeuristic, QualityUTM, QualityExact}

func (q Quality) Rank() int {
	return qualityRank[q]
}

// Below retorna os níveis estritamente inferiores a q
func (q Quality) Below() []Quality {
	lower := make([]Quality, 0, len(Qualities))
	for _, candidate := range Qualities {
		if candidate.Rank() < q.Rank() {
			lower = append(lower, candidate)
		}
	}
	return lower
}

type LinkMethod string

const (
	MethodNone        LinkMethod = ""
	MethodFBCLID      LinkMethod = "fbclid"
	MethodGCLID       LinkMethod = "gclid"
	MethodFBCFBP      LinkMethod = "fbc_fbp"
	MethodUTM         LinkMethod = "utm"
	MethodLandingPage LinkMethod = "landing_page"
	MethodReferrer    LinkMethod = "referrer"
)

// AttributionSnapshot é o conjunto de sinais de origem gravado no contato
type AttributionSnapshot struct {
	SessionID   string     `json:"session_id,omitempty"`
	FBCLID      string     `json:"fbclid,omitempty"`
	GCLID       string     `json:"gclid,omitempty"`
	FBC         string     `json:"fbc,omitempty"`
	FBP         string     `json:"fbp,omitempty"`
	UTMSource   string     `json:"utm_source,omitempty"`
	UTMMedium   string     `json:"utm_medium,omitempty"`
	UTMCampaign string     `json:"utm_campaign,omitempty"`
	UTMTerm     string     `json:"utm_term,omitempty"`
	UTMContent  string     `json:"utm_content,omitempty"`
	LandingURL  string     `json:"landing_url,omitempty"`
	Referrer    string     `json:"referrer,omitempty"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
}

type AttributionSession struct {
	SessionID      string     `json:"session_id"`
	AccountID      string     `json:"account_id"`
	FBCLID         string     `json:"fbclid"`
	GCLID          string     `json:"gclid"`
	FBC            string     `json:"fbc"`
	FBP            string     `json:"fbp"`
	UTMSource      string     `json:"utm_source"`
	UTMMedium      string     `json:"utm_medium"`
	UTMCampaign    string     `json:"utm_campaign"`
	UTMTerm        string     `json:"utm_term"`
	UTMContent     string     `json:"utm_content"`
	LandingURL     string     `json:"landing_url"`
	Referrer       string     `json:"referrer"`
	Quality        Quality    `json:"quality"`
	Method         LinkMethod `json:"method"`
	ContactID      *int64     `json:"contact_id"`
	FirstVisitAt   time.Time  `json:"first_visit_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
}

func (s *AttributionSession) IsLinked() bool {
	return s.ContactID != nil && s.Quality != QualityNone
}

// Snapshot converte a sessão no formato gravado em contacts.last_attribution_source
func (s *AttributionSession) Snapshot() *AttributionSnapshot {
	capturedAt := s.LastActivityAt
	return &AttributionSnapshot{
		SessionID:   s.SessionID,
		FBCLID:      s.FBCLID,
		GCLID:       s.GCLID,
		FBC:         s.FBC,
		FBP:         s.FBP,
		UTMSource:   s.UTMSource,
		UTMMedium:   s.UTMMedium,
		UTMCampaign: s.UTMCampaign,
		UTMTerm:     s.UTMTerm,
		UTMContent:  s.UTMContent,
		LandingURL:  s.LandingURL,
		Referrer:    s.Referrer,
		CapturedAt:  &capturedAt,
	}
}

// LinkUpdate é o que o compare-and-set grava quando o vínculo é aceito
type LinkUpdate struct {
	ContactID      int64
	Quality        Quality
	Method         LinkMethod
	LastActivityAt time.Time
	ExpiresAt      time.Time
}

type LinkOutcome string

const (
	LinkApplied   LinkOutcome = "applied"
	LinkUnchanged LinkOutcome = "unchanged"
	LinkConflict  LinkOutcome = "conflict"
	LinkNoMatch   LinkOutcome = "no_match"
)

type LinkResult struct {
	Outcome LinkOutcome         `json:"outcome"`
	Quality Quality             `json:"quality"`
	Method  LinkMethod          `json:"method"`
	Session *AttributionSession `json:"session"`
}

type LinkRequest struct {
	AccountID string `json:"-"`
	SessionID string `json:"-"`
	ContactID int64  `json:"contact_id"`
}

// CleanupStats resume as sessões restantes após a limpeza
type CleanupStats struct {
	Total     int64                `json:"total"`
	Linked    int64                `json:"linked"`
	Unlinked  int64                `json:"unlinked"`
	ByQuality map[Quality]int64    `json:"by_quality"`
	ByMethod  map[LinkMethod]int64 `json:"by_method"`
}

type CleanupReport struct {
	Deleted       int64         `json:"deleted"`
	FailedBatches int           `json:"failed_batches"`
	Stats         *CleanupStats `json:"stats"`
	ExecutedAt    time.Time     `json:"executed_at"`
}

// Campos de filtro expostos pelo painel
const (
	FilterUTMSource   = "utm_source"
	FilterUTMMedium   = "utm_medium"
	FilterUTMCampaign = "utm_campaign"
	FilterUTMTerm     = "utm_term"
	FilterUTMContent  = "utm_content"
	FilterFBCLID      = "fbclid"
	FilterGCLID       = "gclid"
)

var FilterFields = []string{
	FilterUTMSource,
	FilterUTMMedium,
	FilterUTMCampaign,
	FilterUTMTerm,
	FilterUTMContent,
	FilterFBCLID,
	FilterGCLID,
}

// FilterOptions mapeia cada campo de filtro para seus valores distintos
type FilterOptions map[string][]string
