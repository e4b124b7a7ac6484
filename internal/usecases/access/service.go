package access

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Gate interface {
	HasRole(ctx context.Context, userID string, accountID string, minRole domain.Role) (bool, error)
	IsGlobalAdmin(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	accountAccessRepository repository.AccountAccessRepository
	userRepository          repository.UserRepository
}

func NewService(accountAccessRepository repository.AccountAccessRepository, userRepository repository.UserRepository) *Service {
	return &Service{
		accountAccessRepository: accountAccessRepository,
		userRepository:          userRepository,
	}
}

// HasRole indica se o usuário tem acesso ativo à conta com papel igual ou superior a minRole
func (s *Service) HasRole(ctx context.Context, userID string, accountID string, minRole domain.Role) (bool, error) {
	if userID == "" || accountID == "" {
		return false, nil
	}

	access, err := s.accountAccessRepository.GetAccess(ctx, userID, accountID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao consultar acesso à conta")
	}

	if access == nil || !access.IsActive {
		return false, nil
	}

	return access.Role.Rank() >= minRole.Rank(), nil
}

func (s *Service) IsGlobalAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao consultar usuário")
	}

	return user != nil && user.IsGlobalAdmin, nil
}
