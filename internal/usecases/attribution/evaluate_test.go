package attribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestEvaluate(t *testing.T) {
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	contact := &domain.Contact{
		ID:           77,
		AccountID:    "ACC001",
		CRMCreatedAt: created,
		AttributionSource: &domain.AttributionSnapshot{
			UTMSource:   "Facebook",
			UTMMedium:   "cpc",
			UTMCampaign: "spring_sale",
			LandingURL:  "https://www.example.com/offer/?utm_source=facebook",
		},
		LastAttributionSource: &domain.AttributionSnapshot{
			FBCLID:   "fb.click.1",
			GCLID:    "g.click.1",
			FBC:      "fb.1.123",
			FBP:      "fb.1.456",
			Referrer: "https://l.instagram.com/some/path",
		},
	}

	tests := []struct {
		name        string
		session     domain.AttributionSession
		wantQuality domain.Quality
		wantMethod  domain.LinkMethod
	}{
		{
			name:        "fbclid igual é exato mesmo fora da janela",
			session:     domain.AttributionSession{AccountID: "ACC001", FBCLID: "fb.click.1", FirstVisitAt: created.AddDate(0, -2, 0)},
			wantQuality: domain.QualityExact,
			wantMethod:  domain.MethodFBCLID,
		},
		{
			name:        "gclid igual é exato",
			session:     domain.AttributionSession{AccountID: "ACC001", GCLID: "g.click.1"},
			wantQuality: domain.QualityExact,
			wantMethod:  domain.MethodGCLID,
		},
		{
			name:        "Par fbc/fbp igual é exato",
			session:     domain.AttributionSession{AccountID: "ACC001", FBC: "fb.1.123", FBP: "fb.1.456"},
			wantQuality: domain.QualityExact,
			wantMethod:  domain.MethodFBCFBP,
		},
		{
			name:        "Só fbc não basta",
			session:     domain.AttributionSession{AccountID: "ACC001", FBC: "fb.1.123", FBP: "other", FirstVisitAt: created},
			wantQuality: domain.QualityNone,
			wantMethod:  domain.MethodNone,
		},
		{
			name: "Tupla UTM igual sem diferenciar maiúsculas dentro da janela",
			session: domain.AttributionSession{
				AccountID: "ACC001", UTMSource: "facebook", UTMMedium: "CPC", UTMCampaign: "Spring_Sale",
				FirstVisitAt: created.Add(-6 * 24 * time.Hour),
			},
			wantQuality: domain.QualityUTM,
			wantMethod:  domain.MethodUTM,
		},
		{
			name: "Tupla UTM fora da janela",
			session: domain.AttributionSession{
				AccountID: "ACC001", UTMSource: "facebook", UTMMedium: "cpc", UTMCampaign: "spring_sale",
				FirstVisitAt: created.Add(8 * 24 * time.Hour),
			},
			wantQuality: domain.QualityNone,
			wantMethod:  domain.MethodNone,
		},
		{
			name: "Campanha diferente cai para a landing page",
			session: domain.AttributionSession{
				AccountID: "ACC001", UTMSource: "facebook", UTMMedium: "cpc", UTMCampaign: "black_friday",
				LandingURL: "http://example.com/offer?ref=abc", FirstVisitAt: created,
			},
			wantQuality: domain.QualityHeuristic,
			wantMethod:  domain.MethodLandingPage,
		},
		{
			name: "Mesmo host de referência",
			session: domain.AttributionSession{
				AccountID: "ACC001", Referrer: "https://L.Instagram.com/", FirstVisitAt: created.Add(time.Hour),
			},
			wantQuality: domain.QualityHeuristic,
			wantMethod:  domain.MethodReferrer,
		},
		{
			name:        "Conta diferente nunca casa",
			session:     domain.AttributionSession{AccountID: "ACC002", FBCLID: "fb.click.1"},
			wantQuality: domain.QualityNone,
			wantMethod:  domain.MethodNone,
		},
		{
			name:        "Sem sinais",
			session:     domain.AttributionSession{AccountID: "ACC001", FirstVisitAt: created},
			wantQuality: domain.QualityNone,
			wantMethod:  domain.MethodNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quality, method := Evaluate(&tt.session, contact, window)

			assert.Equal(t, tt.wantQuality, quality)
			assert.Equal(t, tt.wantMethod, method)
		})
	}
}

func TestQualityBelow(t *testing.T) {
	assert.Equal(t, []domain.Quality{domain.QualityNone, domain.QualityHeuristic, domain.QualityUTM}, domain.QualityExact.Below())
	assert.Equal(t, []domain.Quality{domain.QualityNone}, domain.QualityHeuristic.Below())
	assert.Empty(t, domain.QualityNone.Below())
}

func TestEvaluate_IgnoresSnapshotFromSameSession(t *testing.T) {
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	contact := &domain.Contact{
		AccountID:    "ACC001",
		CRMCreatedAt: created,
		LastAttributionSource: &domain.AttributionSnapshot{
			SessionID: "sess-1",
			FBCLID:    "fb.click.1",
		},
	}

	session := &domain.AttributionSession{SessionID: "sess-1", AccountID: "ACC001", FBCLID: "fb.click.1", FirstVisitAt: created}
	quality, method := Evaluate(session, contact, 7*24*time.Hour)
	assert.Equal(t, domain.QualityNone, quality)
	assert.Equal(t, domain.MethodNone, method)

	other := &domain.AttributionSession{SessionID: "sess-2", AccountID: "ACC001", FBCLID: "fb.click.1", FirstVisitAt: created}
	quality, method = Evaluate(other, contact, 7*24*time.Hour)
	assert.Equal(t, domain.QualityExact, quality)
	assert.Equal(t, domain.MethodFBCLID, method)
}
