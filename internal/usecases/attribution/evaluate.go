package attribution

import (
	"net/url"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Evaluate mede o quão forte é a evidência de que a sessão originou o contato.
// Sessão e contato de contas diferentes nunca casam.
func Evaluate(session *domain.AttributionSession, contact *domain.Contact, window time.Duration) (domain.Quality, domain.LinkMethod) {
	if session == nil || contact == nil || session.AccountID != contact.AccountID {
		return domain.QualityNone, domain.MethodNone
	}

	snapshots := independentSnapshots(session, contact.Snapshots())

	if method := exactMatch(session, snapshots); method != domain.MethodNone {
		return domain.QualityExact, method
	}

	if !withinWindow(session.FirstVisitAt, contact.CRMCreatedAt, window) {
		return domain.QualityNone, domain.MethodNone
	}

	if utmMatch(session, snapshots) {
		return domain.QualityUTM, domain.MethodUTM
	}

	if method := heuristicMatch(session, snapshots); method != domain.MethodNone {
		return domain.QualityHeuristic, method
	}

	return domain.QualityNone, domain.MethodNone
}

// independentSnapshots descarta os snapshots gravados a partir da própria sessão
func independentSnapshots(session *domain.AttributionSession, snapshots []*domain.AttributionSnapshot) []*domain.AttributionSnapshot {
	kept := make([]*domain.AttributionSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot.SessionID != "" && snapshot.SessionID == session.SessionID {
			continue
		}
		kept = append(kept, snapshot)
	}
	return kept
}

func exactMatch(session *domain.AttributionSession, snapshots []*domain.AttributionSnapshot) domain.LinkMethod {
	for _, snapshot := range snapshots {
		switch {
		case session.FBCLID != "" && session.FBCLID == snapshot.FBCLID:
			return domain.MethodFBCLID
		case session.GCLID != "" && session.GCLID == snapshot.GCLID:
			return domain.MethodGCLID
		case session.FBC != "" && session.FBP != "" && session.FBC == snapshot.FBC && session.FBP == snapshot.FBP:
			return domain.MethodFBCFBP
		}
	}
	return domain.MethodNone
}

func utmMatch(session *domain.AttributionSession, snapshots []*domain.AttributionSnapshot) bool {
	if session.UTMSource == "" || session.UTMMedium == "" || session.UTMCampaign == "" {
		return false
	}

	for _, snapshot := range snapshots {
		if strings.EqualFold(session.UTMSource, snapshot.UTMSource) &&
			strings.EqualFold(session.UTMMedium, snapshot.UTMMedium) &&
			strings.EqualFold(session.UTMCampaign, snapshot.UTMCampaign) {
			return true
		}
	}
	return false
}

func heuristicMatch(session *domain.AttributionSession, snapshots []*domain.AttributionSnapshot) domain.LinkMethod {
	landing := pageKey(session.LandingURL)
	referrer := hostKey(session.Referrer)

	for _, snapshot := range snapshots {
		if landing != "" && landing == pageKey(snapshot.LandingURL) {
			return domain.MethodLandingPage
		}
		if referrer != "" && referrer == hostKey(snapshot.Referrer) {
			return domain.MethodReferrer
		}
	}
	return domain.MethodNone
}

func withinWindow(visit time.Time, created time.Time, window time.Duration) bool {
	if visit.IsZero() || created.IsZero() {
		return false
	}

	diff := visit.Sub(created)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

// pageKey reduz uma URL a host + caminho, ignorando query string, fragmento e barra final
func pageKey(raw string) string {
	u, ok := parseURL(raw)
	if !ok {
		return ""
	}
	return hostOf(u) + strings.TrimSuffix(strings.ToLower(u.Path), "/")
}

func hostKey(raw string) string {
	u, ok := parseURL(raw)
	if !ok {
		return ""
	}
	return hostOf(u)
}

func parseURL(raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, false
	}
	return u, true
}

func hostOf(u *url.URL) string {
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
