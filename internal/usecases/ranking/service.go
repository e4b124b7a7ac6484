package ranking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentCalculations = 5

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type RankingService interface {
	Leaderboard(ctx context.Context, accountID string, metricName string, dateRange domain.DateRange, comparisonRange *domain.DateRange) (*domain.Leaderboard, error)
}

type LeaderboardService struct {
	calculator              metrics.Calculator
	accountAccessRepository repository.AccountAccessRepository
	now                     func() time.Time
}

func NewLeaderboardService(calculator metrics.Calculator, accountAccessRepository repository.AccountAccessRepository) *LeaderboardService {
	return &LeaderboardService{
		calculator:              calculator,
		accountAccessRepository: accountAccessRepository,
		now:                     time.Now,
	}
}

// Leaderboard calcula uma métrica de usuário para cada membro ativo com papel de responsável
// e ordena do maior para o menor valor
func (s *LeaderboardService) Leaderboard(
	ctx context.Context,
	accountID string,
	metricName string,
	dateRange domain.DateRange,
	comparisonRange *domain.DateRange,
) (*domain.Leaderboard, error) {
	def, err := s.userMetric(accountID, metricName)
	if err != nil {
		return nil, err
	}

	members, err := s.accountAccessRepository.ListActive(ctx, accountID)
	if err != nil {
		return nil, err
	}

	assignees := make([]domain.AccountAccess, 0, len(members))
	for _, member := range members {
		if member.Role.IsAssignee() {
			assignees = append(assignees, member)
		}
	}

	entries := make([]*domain.LeaderboardEntry, len(assignees))
	previousValues := make(map[string]float64, len(assignees))
	results := make([]*domain.MetricResult, len(assignees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalculations)

	for i, member := range assignees {
		i, member := i, member
		g.Go(func() error {
			result, err := s.calculator.Calculate(
				gctx,
				domain.MetricScope{AccountID: accountID, UserID: member.UserID},
				def.Name,
				dateRange,
				domain.CalculateOptions{ComparisonRange: comparisonRange},
			)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"metric":     def.Name,
		}).Error("Erro ao montar leaderboard")
		return nil, err
	}

	for i, member := range assignees {
		entries[i] = &domain.LeaderboardEntry{
			UserID:       member.UserID,
			DisplayName:  member.DisplayName,
			Role:         member.Role,
			Value:        results[i].Value,
			DisplayValue: results[i].DisplayValue,
		}
		if results[i].Comparison != nil {
			previousValues[member.UserID] = results[i].Comparison.PreviousValue
		}
	}

	var previousPositions map[string]int
	if comparisonRange != nil {
		previousPositions = rankPrevious(entries, previousValues)
	}

	updatePositions(entries, previousPositions)

	leaderboard := &domain.Leaderboard{
		AccountID:       accountID,
		Metric:          def.Name,
		Range:           dateRange,
		ComparisonRange: comparisonRange,
		Entries:         make([]domain.LeaderboardEntry, 0, len(entries)),
		GeneratedAt:     s.now(),
	}
	for _, entry := range entries {
		leaderboard.Entries = append(leaderboard.Entries, *entry)
	}

	return leaderboard, nil
}

func (s *LeaderboardService) userMetric(accountID string, metricName string) (domain.MetricDefinition, error) {
	for _, def := range s.calculator.Definitions() {
		if def.Name != metricName {
			continue
		}
		if def.AppliesTo != domain.AppliesToUser {
			return def, domain.NewAnalyticsErrorWithID(domain.ErrValidation, apiErrors.ErrInvalidRequest, accountID,
				fmt.Sprintf("métrica %q não é por usuário", metricName))
		}
		return def, nil
	}

	return domain.MetricDefinition{}, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrMetricNotFound, accountID,
		fmt.Sprintf("métrica %q não registrada", metricName))
}

// sortEntries ordena por valor decrescente; empates por nome e depois por id para manter a ordem estável
func sortEntries(entries []*domain.LeaderboardEntry, value func(*domain.LeaderboardEntry) float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := value(entries[i]), value(entries[j])
		if vi != vj {
			return vi > vj
		}
		if entries[i].DisplayName != entries[j].DisplayName {
			return entries[i].DisplayName < entries[j].DisplayName
		}
		return entries[i].UserID < entries[j].UserID
	})
}

func rankPrevious(entries []*domain.LeaderboardEntry, previousValues map[string]float64) map[string]int {
	ordered := make([]*domain.LeaderboardEntry, len(entries))
	copy(ordered, entries)

	sortEntries(ordered, func(e *domain.LeaderboardEntry) float64 {
		return previousValues[e.UserID]
	})

	positions := make(map[string]int, len(ordered))
	for i, entry := range ordered {
		positions[entry.UserID] = i + 1
	}
	return positions
}

func updatePositions(entries []*domain.LeaderboardEntry, previousPositions map[string]int) {
	sortEntries(entries, func(e *domain.LeaderboardEntry) float64 {
		return e.Value
	})

	for i, entry := range entries {
		entry.Position = i + 1

		previous, exists := previousPositions[entry.UserID]
		if exists {
			entry.PositionChange = previous - entry.Position
			entry.PreviousPosition = previous
		}
	}
}
