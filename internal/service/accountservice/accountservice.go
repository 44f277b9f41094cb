package accountservice

import (
	"context"
	"errors"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	ActiveSuffixExists(ctx context.Context, suffix string, excludeID int) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidAccountNumber = errors.New("account number must contain digits")
	ErrDuplicateSuffix      = errors.New("another active account already uses this suffix")
	ErrAccountNotFound      = errors.New("slip account not found")
)

type AccountCommand struct {
	AccountNumber string
	ReceiverName  string
	DisplayName   string
	FullName      string
	IsActive      bool
}

func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list slip accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// Create derives the suffix from the submitted number and rejects it when
// another active account already holds the same suffix. Two full numbers
// sharing a last-4 suffix are indistinguishable to the matcher, hence the
// uniqueness rule on the derived key.
func (s *Service) Create(ctx context.Context, cmd AccountCommand) (*domain.Account, error) {
	suffix := validate.AccountSuffix(cmd.AccountNumber)
	if suffix == "" {
		return nil, ErrInvalidAccountNumber
	}

	if cmd.IsActive {
		exists, err := s.repo.ActiveSuffixExists(ctx, suffix, 0)
		if err != nil {
			return nil, err
		}
		if exists {
			zap.L().Info("duplicate active suffix rejected", zap.String("suffix", suffix))
			return nil, ErrDuplicateSuffix
		}
	}

	account := &domain.Account{
		AccountNumber: cmd.AccountNumber,
		AccountSuffix: suffix,
		ReceiverName:  cmd.ReceiverName,
		DisplayName:   cmd.DisplayName,
		FullName:      cmd.FullName,
		IsActive:      cmd.IsActive,
	}
	created, err := s.repo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create slip account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, cmd AccountCommand) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	suffix := validate.AccountSuffix(cmd.AccountNumber)
	if suffix == "" {
		return nil, ErrInvalidAccountNumber
	}

	if cmd.IsActive {
		exists, err := s.repo.ActiveSuffixExists(ctx, suffix, id)
		if err != nil {
			return nil, err
		}
		if exists {
			zap.L().Info("duplicate active suffix rejected", zap.String("suffix", suffix))
			return nil, ErrDuplicateSuffix
		}
	}

	account.AccountNumber = cmd.AccountNumber
	account.AccountSuffix = suffix
	account.ReceiverName = cmd.ReceiverName
	account.DisplayName = cmd.DisplayName
	account.FullName = cmd.FullName
	account.IsActive = cmd.IsActive

	if err := s.repo.Update(ctx, account); err != nil {
		zap.L().Error("can't update slip account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete slip account", zap.Error(err))
		return err
	}
	return nil
}
