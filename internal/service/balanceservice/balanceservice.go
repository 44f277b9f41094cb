package balanceservice

import (
	"context"

	"github.com/wkittisak/shoppay/internal/domain"
	"go.uber.org/zap"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type Service struct {
	balanceRepo BalanceRepo
}

func New(balanceRepo BalanceRepo) *Service {
	return &Service{
		balanceRepo: balanceRepo,
	}
}

// GetBalance treats a missing balance row as zero, matching how the debit
// guard behaves for users whose balance was never initialized.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.Balance{UserID: userID}, nil
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
