package attribution

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/cache"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSessionTTL       = 30 * 24 * time.Hour
	defaultUTMWindow        = 7 * 24 * time.Hour
	defaultFilterLimit      = 200
	defaultCleanupBatchSize = 1000
	maxCleanupFailures      = 3
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Linker interface {
	Touch(ctx context.Context, session *domain.AttributionSession) (*domain.AttributionSession, error)
	Link(ctx context.Context, request domain.LinkRequest) (*domain.LinkResult, error)
	CleanupExpired(ctx context.Context) (*domain.CleanupReport, error)
	AggregateFilterOptions(ctx context.Context, accountID string) (domain.FilterOptions, error)
}

type Service struct {
	sessionRepository repository.AttributionSessionRepository
	contactRepository repository.ContactRepository
	filterCache       cache.FilterOptionsCache
	sessionTTL        time.Duration
	utmWindow         time.Duration
	filterLimit       int
	cleanupBatchSize  int
	now               func() time.Time
}

// NewService cria o serviço de atribuição; filterCache pode ser nil quando o redis não está configurado
func NewService(
	sessionRepository repository.AttributionSessionRepository,
	contactRepository repository.ContactRepository,
	filterCache cache.FilterOptionsCache,
	cfg *config.Config,
) *Service {
	s := &Service{
		sessionRepository: sessionRepository,
		contactRepository: contactRepository,
		filterCache:       filterCache,
		sessionTTL:        cfg.Attribution.SessionTTL(),
		utmWindow:         cfg.Attribution.UTMWindow(),
		filterLimit:       cfg.Attribution.FilterOptionsLimit,
		cleanupBatchSize:  cfg.Attribution.CleanupBatchSize,
		now:               time.Now,
	}

	if s.sessionTTL <= 0 {
		s.sessionTTL = defaultSessionTTL
	}
	if s.utmWindow <= 0 {
		s.utmWindow = defaultUTMWindow
	}
	if s.filterLimit <= 0 {
		s.filterLimit = defaultFilterLimit
	}
	if s.cleanupBatchSize <= 0 {
		s.cleanupBatchSize = defaultCleanupBatchSize
	}

	return s
}

// Touch registra uma visita e devolve a sessão como ficou gravada. A qualidade do vínculo nunca é alterada aqui.
func (s *Service) Touch(ctx context.Context, session *domain.AttributionSession) (*domain.AttributionSession, error) {
	if session == nil || session.SessionID == "" || session.AccountID == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "session_id e account_id são obrigatórios")
	}

	now := s.now().UTC()
	if session.LastActivityAt.IsZero() {
		session.LastActivityAt = now
	}
	if session.FirstVisitAt.IsZero() {
		session.FirstVisitAt = session.LastActivityAt
	}
	session.ExpiresAt = session.LastActivityAt.Add(s.sessionTTL)

	stored, err := s.sessionRepository.Touch(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar sessão de atribuição")
	}
	if stored == nil {
		// o session_id existe em outra conta
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, session.AccountID, "sessão não encontrada")
	}

	return stored, nil
}

// Link avalia a sessão contra o contato e aplica o vínculo apenas se ele for estritamente mais forte
func (s *Service) Link(ctx context.Context, request domain.LinkRequest) (*domain.LinkResult, error) {
	if request.AccountID == "" || request.SessionID == "" || request.ContactID <= 0 {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "account_id, session_id e contact_id são obrigatórios")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": request.AccountID,
		"session_id": request.SessionID,
		"contact_id": request.ContactID,
	})

	session, err := s.sessionRepository.Get(ctx, request.AccountID, request.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar sessão de atribuição")
	}
	if session == nil {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, request.AccountID, "sessão não encontrada")
	}

	contact, err := s.contactRepository.GetByID(ctx, request.AccountID, request.ContactID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contato")
	}
	if contact == nil {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, request.AccountID, "contato não encontrado")
	}

	quality, method := Evaluate(session, contact, s.utmWindow)

	result := &domain.LinkResult{
		Quality: quality,
		Method:  method,
		Session: session,
	}

	switch {
	case quality == domain.QualityNone:
		result.Outcome = domain.LinkNoMatch
		return result, nil

	case session.Quality == domain.QualityExact && session.ContactID != nil && *session.ContactID != contact.ID && quality == domain.QualityExact:
		logger.WithFields(log.Fields{
			"linked_contact_id": *session.ContactID,
			"method":            method,
		}).Warn("Vínculo exato conflitante rejeitado")
		result.Outcome = domain.LinkConflict
		return result, nil

	case quality.Rank() <= session.Quality.Rank():
		result.Outcome = domain.LinkUnchanged
		return result, nil
	}

	now := s.now().UTC()
	update := domain.LinkUpdate{
		ContactID:      contact.ID,
		Quality:        quality,
		Method:         method,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.sessionTTL),
	}

	applied, err := s.sessionRepository.CompareAndSetLink(ctx, request.AccountID, request.SessionID, quality.Below(), update)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar vínculo de atribuição")
	}

	if !applied {
		// outra escrita elevou a qualidade entre a leitura e o compare-and-set
		logger.Debug("Vínculo não aplicado: qualidade da sessão mudou")
		result.Outcome = domain.LinkUnchanged
		return result, nil
	}

	contactID := contact.ID
	session.ContactID = &contactID
	session.Quality = quality
	session.Method = method
	session.LastActivityAt = update.LastActivityAt
	session.ExpiresAt = update.ExpiresAt
	result.Outcome = domain.LinkApplied

	if err := s.contactRepository.RecordAttributionTouch(ctx, contact.ID, session.Snapshot()); err != nil {
		logger.WithError(err).Warn("Falha ao gravar snapshot de atribuição no contato")
	}

	if s.filterCache != nil {
		if err := s.filterCache.Invalidate(ctx, request.AccountID); err != nil {
			logger.WithError(err).Warn("Falha ao invalidar cache de opções de filtro")
		}
	}

	logger.WithFields(log.Fields{
		"quality": quality,
		"method":  method,
	}).Info("Vínculo de atribuição aplicado")

	return result, nil
}

// CleanupExpired remove as sessões expiradas em lotes e devolve as estatísticas das restantes
func (s *Service) CleanupExpired(ctx context.Context) (*domain.CleanupReport, error) {
	now := s.now().UTC()
	report := &domain.CleanupReport{ExecutedAt: now}

	logger := log.ForContext(ctx).WithField("batch_size", s.cleanupBatchSize)

	consecutiveFailures := 0
	for batch := 1; ; batch++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		deleted, err := s.sessionRepository.DeleteExpired(ctx, now, s.cleanupBatchSize)
		if err != nil {
			consecutiveFailures++
			report.FailedBatches++
			logger.WithError(err).WithField("batch_key", fmt.Sprintf("cleanup:%d", batch)).Error("Falha ao remover lote de sessões expiradas")

			if consecutiveFailures >= maxCleanupFailures {
				logger.Warn("Limpeza interrompida após falhas consecutivas")
				break
			}
			continue
		}

		consecutiveFailures = 0
		report.Deleted += deleted

		if deleted < int64(s.cleanupBatchSize) {
			break
		}
	}

	stats, err := s.sessionRepository.Stats(ctx)
	if err != nil {
		return report, errors.Wrap(err, "erro ao calcular estatísticas das sessões")
	}
	report.Stats = stats

	logger.WithFields(log.Fields{
		"deleted":        report.Deleted,
		"failed_batches": report.FailedBatches,
		"total":          stats.Total,
		"linked":         stats.Linked,
		"unlinked":       stats.Unlinked,
	}).Info("Limpeza de sessões de atribuição concluída")

	return report, nil
}

// AggregateFilterOptions junta os valores distintos de cada campo de filtro dos contatos e das sessões
func (s *Service) AggregateFilterOptions(ctx context.Context, accountID string) (domain.FilterOptions, error) {
	if accountID == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "account_id é obrigatório")
	}

	logger := log.ForContext(ctx).WithField("account_id", accountID)

	if s.filterCache != nil {
		cached, found, err := s.filterCache.Get(ctx, accountID)
		if err != nil {
			logger.WithError(err).Warn("Falha ao ler cache de opções de filtro")
		} else if found {
			return cached, nil
		}
	}

	options := make(domain.FilterOptions, len(domain.FilterFields))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, field := range domain.FilterFields {
		field := field
		g.Go(func() error {
			fromContacts, err := s.contactRepository.DistinctSnapshotValues(gctx, accountID, field, s.filterLimit)
			if err != nil {
				return errors.Wrapf(err, "erro ao listar %s dos contatos", field)
			}

			fromSessions, err := s.sessionRepository.DistinctValues(gctx, accountID, field, s.filterLimit)
			if err != nil {
				return errors.Wrapf(err, "erro ao listar %s das sessões", field)
			}

			values := mergeValues(s.filterLimit, fromContacts, fromSessions)

			mu.Lock()
			options[field] = values
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.filterCache != nil {
		if err := s.filterCache.Set(ctx, accountID, options); err != nil {
			logger.WithError(err).Warn("Falha ao gravar cache de opções de filtro")
		}
	}

	return options, nil
}

// mergeValues une as listas, remove vazios e repetidos, ordena e corta em limit
func mergeValues(limit int, lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)

	for _, list := range lists {
		for _, value := range list {
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			merged = append(merged, value)
		}
	}

	sort.Strings(merged)

	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
