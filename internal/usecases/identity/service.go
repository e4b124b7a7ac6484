package identity

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const defaultBatchSize = 200

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Resolver interface {
	ResolveCandidates(ctx context.Context, accountID string) (*domain.CandidatesResponse, error)
	Resolve(ctx context.Context, accountID string, role domain.Role, record *domain.ActivityRecord) (domain.ResolutionOutcome, error)
	Backfill(ctx context.Context, accountID string) (*domain.BackfillReport, error)
	ReclassifyRoles(ctx context.Context, accountID string) ([]domain.RoleProposal, error)
	RecordInvitation(ctx context.Context, request domain.InvitationRequest) (*domain.CRMUser, error)
}

type Service struct {
	activityRepository      repository.ActivityRepository
	accountAccessRepository repository.AccountAccessRepository
	crmUserRepository       repository.CRMUserRepository
	batchSize               int
}

func NewService(
	activityRepository repository.ActivityRepository,
	accountAccessRepository repository.AccountAccessRepository,
	crmUserRepository repository.CRMUserRepository,
	cfg *config.Config,
) *Service {
	batchSize := cfg.IdentityBackfill.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		activityRepository:      activityRepository,
		accountAccessRepository: accountAccessRepository,
		crmUserRepository:       crmUserRepository,
		batchSize:               batchSize,
	}
}

func (s *Service) loadDirectory(ctx context.Context, accountID string) (*directory, error) {
	members, err := s.accountAccessRepository.ListActive(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros ativos da conta")
	}

	crmUsers, err := s.crmUserRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários do CRM")
	}

	return newDirectory(accountID, members, crmUsers), nil
}

// Resolve descobre o usuário da plataforma responsável pelo registro no papel informado, sem gravar nada
func (s *Service) Resolve(ctx context.Context, accountID string, role domain.Role, record *domain.ActivityRecord) (domain.ResolutionOutcome, error) {
	if !role.IsAssignee() {
		return domain.ResolutionOutcome{}, domain.NewAnalyticsErrorWithID(
			domain.ErrValidation, apiErrors.ErrInvalidRequest, accountID,
			fmt.Sprintf("papel %q não é responsável por atividades", role),
		)
	}

	name, crmUserID, userID := record.Assignee(role)
	if userID != nil && *userID != "" {
		return domain.NewResolved(*userID, domain.ReasonAlreadySet), nil
	}

	dir, err := s.loadDirectory(ctx, accountID)
	if err != nil {
		return domain.ResolutionOutcome{}, err
	}

	return s.resolve(ctx, dir, role, name, crmUserID, nil)
}

// resolve aplica a precedência id do CRM > nome exato > desempate pelo registro mais recente.
// tieBreaks guarda os desempates já consultados durante um backfill.
func (s *Service) resolve(
	ctx context.Context,
	dir *directory,
	role domain.Role,
	name string,
	crmUserID *string,
	tieBreaks map[string]domain.ResolutionOutcome,
) (domain.ResolutionOutcome, error) {
	if member, ok := dir.memberByCRMUser(crmUserID); ok {
		return domain.NewResolved(member.UserID, domain.ReasonResolvedCRM), nil
	}

	normalized := NormalizeName(name)
	if normalized == "" {
		return domain.NewUnresolved(domain.ReasonEmptyName), nil
	}

	matches := dir.matchName(normalized)
	switch len(matches) {
	case 0:
		return domain.NewUnresolved(domain.ReasonNoMatch), nil
	case 1:
		return domain.NewResolved(matches[0], domain.ReasonResolvedName), nil
	}

	cacheKey := string(role) + "|" + normalized
	if outcome, ok := tieBreaks[cacheKey]; ok {
		return outcome, nil
	}

	latest, err := s.activityRepository.LastMatchedAt(ctx, role, dir.accountID, normalized, matches)
	if err != nil {
		return domain.ResolutionOutcome{}, errors.Wrap(err, "erro ao desempatar candidatos pelo registro mais recente")
	}

	outcome := breakTie(matches, latest)
	if tieBreaks != nil {
		tieBreaks[cacheKey] = outcome
	}

	return outcome, nil
}

// breakTie escolhe o candidato com o registro mais recente; empate ou ausência de histórico é ambíguo
func breakTie(candidates []string, latest map[string]time.Time) domain.ResolutionOutcome {
	var best time.Time
	leaders := make([]string, 0, len(candidates))

	for _, userID := range candidates {
		at, ok := latest[userID]
		if !ok {
			continue
		}

		switch {
		case at.After(best):
			best = at
			leaders = append(leaders[:0], userID)
		case at.Equal(best):
			leaders = append(leaders, userID)
		}
	}

	if len(leaders) == 1 {
		return domain.NewResolved(leaders[0], domain.ReasonResolvedName)
	}

	if len(leaders) == 0 {
		leaders = append(leaders, candidates...)
	}
	sort.Strings(leaders)

	return domain.NewAmbiguous(leaders)
}

// Backfill preenche os *_user_id vazios da conta paginando por id. Nunca sobrescreve um id existente.
func (s *Service) Backfill(ctx context.Context, accountID string) (*domain.BackfillReport, error) {
	dir, err := s.loadDirectory(ctx, accountID)
	if err != nil {
		return nil, err
	}

	report := &domain.BackfillReport{
		JobID:     utils.GenerateJobID("backfill"),
		AccountID: accountID,
		Reasons:   make([]domain.BackfillReason, 0),
		StartedAt: time.Now(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"job_id":     report.JobID,
		"account_id": accountID,
	})
	logger.Info("Iniciando backfill de identidades")

	tieBreaks := make(map[string]domain.ResolutionOutcome)

	for _, kind := range domain.ActivityKinds {
		for _, role := range kind.Assignees() {
			if err := ctx.Err(); err != nil {
				report.FinishedAt = time.Now()
				return report, err
			}

			s.backfillColumn(ctx, logger, dir, report, kind, role, tieBreaks)
		}
	}

	if err := s.refreshCRMUsers(ctx, accountID); err != nil {
		logger.WithError(err).Warn("Falha ao atualizar contadores de usuários do CRM")
	}

	report.FinishedAt = time.Now()

	logger.WithFields(logrus.Fields{
		"processed":      report.Processed,
		"succeeded":      report.Succeeded,
		"ambiguous":      report.Ambiguous,
		"unresolved":     report.Unresolved,
		"failed":         report.Failed,
		"failed_batches": report.FailedBatches,
		"duration":       report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Backfill de identidades concluído")

	return report, nil
}

func (s *Service) backfillColumn(
	ctx context.Context,
	logger *logrus.Entry,
	dir *directory,
	report *domain.BackfillReport,
	kind domain.ActivityKind,
	role domain.Role,
	tieBreaks map[string]domain.ResolutionOutcome,
) {
	table := kind.Table()

	var afterID int64
	for {
		if ctx.Err() != nil {
			return
		}

		rows, err := s.activityRepository.ListUnresolved(ctx, kind, role, dir.accountID, afterID, s.batchSize)
		if err != nil {
			// sem a página o cursor não avança; a coluna fica para a próxima execução
			batchKey := fmt.Sprintf("%s:%s:>%d", table, role, afterID)
			report.FailedBatches++
			report.Reasons = append(report.Reasons, domain.BackfillReason{Table: table, Role: role, BatchKey: batchKey, Code: domain.ReasonBatchFailed})
			logger.WithError(err).WithField("batch_key", batchKey).Error("Falha ao listar lote do backfill")
			return
		}

		if len(rows) == 0 {
			return
		}

		batchKey := fmt.Sprintf("%s:%s:%d-%d", table, role, rows[0].RecordID, rows[len(rows)-1].RecordID)
		for _, row := range rows {
			s.backfillRow(ctx, logger, dir, report, kind, role, row, batchKey, tieBreaks)
		}

		if len(rows) < s.batchSize {
			return
		}
		afterID = rows[len(rows)-1].RecordID
	}
}

func (s *Service) backfillRow(
	ctx context.Context,
	logger *logrus.Entry,
	dir *directory,
	report *domain.BackfillReport,
	kind domain.ActivityKind,
	role domain.Role,
	row domain.UnresolvedAssignee,
	batchKey string,
	tieBreaks map[string]domain.ResolutionOutcome,
) {
	report.Processed++

	reason := domain.BackfillReason{
		Table:    kind.Table(),
		Role:     role,
		RecordID: row.RecordID,
		BatchKey: batchKey,
		Name:     row.Name,
	}

	outcome, err := s.resolve(ctx, dir, role, row.Name, row.CRMUserID, tieBreaks)
	if err != nil {
		report.Failed++
		reason.Code = domain.ReasonBatchFailed
		report.Reasons = append(report.Reasons, reason)
		logger.WithError(err).WithField("batch_key", batchKey).Warn("Falha ao resolver responsável")
		return
	}

	switch outcome.Kind {
	case domain.Ambiguous:
		report.Ambiguous++
		reason.Code = outcome.Reason
		report.Reasons = append(report.Reasons, reason)
		return
	case domain.Unresolved:
		report.Unresolved++
		reason.Code = outcome.Reason
		report.Reasons = append(report.Reasons, reason)
		return
	}

	filled, err := s.activityRepository.FillUserID(ctx, kind, role, row.RecordID, outcome.UserID)
	if err != nil {
		report.Failed++
		reason.Code = domain.ReasonWriteFailed
		report.Reasons = append(report.Reasons, reason)
		logger.WithError(err).WithFields(logrus.Fields{
			"batch_key": batchKey,
			"record_id": row.RecordID,
		}).Warn("Falha ao gravar responsável resolvido")
		return
	}

	report.Succeeded++
	if !filled {
		// outra execução preencheu a coluna primeiro
		reason.Code = domain.ReasonLostRace
		report.Reasons = append(report.Reasons, reason)
	}
}

// refreshCRMUsers recalcula os contadores de atividade por usuário do CRM
func (s *Service) refreshCRMUsers(ctx context.Context, accountID string) error {
	groups := make(map[string]*assigneeGroup)
	order := make([]string, 0)

	for _, kind := range domain.ActivityKinds {
		for _, role := range kind.Assignees() {
			observations, err := s.activityRepository.DistinctAssignees(ctx, kind, role, accountID)
			if err != nil {
				return errors.Wrapf(err, "erro ao listar responsáveis de %s", kind.Table())
			}

			for _, obs := range observations {
				key := CRMKey(obs.CRMUserID, obs.Name)
				group, ok := groups[key]
				if !ok {
					group = newAssigneeGroup()
					groups[key] = group
					order = append(order, key)
				}
				group.add(role, obs)
			}
		}
	}

	users := make([]domain.CRMUser, 0, len(order))
	for _, key := range order {
		group := groups[key]
		lastSeen := group.lastSeen
		users = append(users, domain.CRMUser{
			AccountID:      accountID,
			CRMUserID:      key,
			Name:           group.displayName(),
			Role:           group.dominantRole(),
			UserID:         group.userID(),
			ActivityCount:  group.count,
			LastActivityAt: &lastSeen,
		})
	}

	return s.crmUserRepository.UpsertActivity(ctx, users)
}

// ReclassifyRoles propõe correções de papel quando o papel observado nas atividades diverge do declarado
func (s *Service) ReclassifyRoles(ctx context.Context, accountID string) ([]domain.RoleProposal, error) {
	members, err := s.accountAccessRepository.ListActive(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar membros ativos da conta")
	}

	counts, err := s.activityRepository.RoleCounts(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar atividades por papel")
	}

	proposals := make([]domain.RoleProposal, 0)
	for _, member := range members {
		if member.Role == domain.RoleAdmin || member.Role == domain.RoleModerator {
			continue
		}

		count := counts[member.UserID]
		if count.Setter == count.SalesRep {
			continue
		}

		observed := domain.RoleSetter
		if count.SalesRep > count.Setter {
			observed = domain.RoleSalesRep
		}

		if observed == member.Role {
			continue
		}

		proposals = append(proposals, domain.RoleProposal{
			UserID:        member.UserID,
			DisplayName:   member.DisplayName,
			DeclaredRole:  member.Role,
			ProposedRole:  observed,
			SetterCount:   count.Setter,
			SalesRepCount: count.SalesRep,
		})
	}

	return proposals, nil
}

// RecordInvitation registra que um convite foi enviado para o usuário do CRM
func (s *Service) RecordInvitation(ctx context.Context, request domain.InvitationRequest) (*domain.CRMUser, error) {
	if !request.Role.IsAssignee() {
		return nil, domain.NewAnalyticsErrorWithID(
			domain.ErrValidation, apiErrors.ErrInvalidRequest, request.AccountID,
			"role deve ser setter ou sales_rep",
		)
	}

	if NormalizeName(request.Name) == "" && request.CRMUserID == "" {
		return nil, domain.NewAnalyticsErrorWithID(
			domain.ErrValidation, apiErrors.ErrMissingRequiredData, request.AccountID,
			"name ou crm_user_id é obrigatório",
		)
	}

	crmUserID := &request.CRMUserID
	key := CRMKey(crmUserID, request.Name)

	existing, err := s.crmUserRepository.GetByCRMUserID(ctx, request.AccountID, key)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário do CRM")
	}

	name := request.Name
	if existing != nil {
		// o upsert do convite não altera o papel gravado
		if existing.Role != request.Role {
			return nil, domain.NewAnalyticsErrorWithID(
				domain.ErrValidation, apiErrors.ErrInvalidRequest, request.AccountID,
				fmt.Sprintf("usuário do CRM já registrado como %s", existing.Role),
			)
		}
		if NormalizeName(name) == "" {
			name = existing.Name
		}
	}

	user, err := s.crmUserRepository.RecordInvitation(ctx, domain.CRMUser{
		AccountID: request.AccountID,
		CRMUserID: key,
		Name:      name,
		Role:      request.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar convite")
	}

	return user, nil
}
