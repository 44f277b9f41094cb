package topupservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/pg"
	"github.com/wkittisak/shoppay/pkg/validate"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindActive(ctx context.Context) ([]domain.Account, error)
}

type TransferRepo interface {
	FindByRef(ctx context.Context, transRef string) (*domain.TransferReference, error)
	CreatePending(ctx context.Context, transRef string) error
	MarkVerified(ctx context.Context, ref *domain.TransferReference) (bool, error)
}

type BalanceRepo interface {
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type Notifier interface {
	TopupApplied(userID int, amount decimal.Decimal, transRef string)
}

type Service struct {
	accountRepo  AccountRepo
	transferRepo TransferRepo
	balanceRepo  BalanceRepo
	txManager    pg.TXManager
	notifier     Notifier
}

func New(accountRepo AccountRepo, transferRepo TransferRepo, balanceRepo BalanceRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		balanceRepo:  balanceRepo,
		txManager:    txManager,
		notifier:     notifier,
	}
}

var (
	ErrDuplicateTransRef    = errors.New("transfer reference already redeemed")
	ErrNoAccountsConfigured = errors.New("no receiving accounts configured")
	ErrAccountMismatch      = errors.New("slip does not match any receiving account")
	ErrInvalidAmount        = errors.New("top-up amount must be positive")
)

type VerifyCommand struct {
	ReceiverAccount string
	ReceiverName    string
	Amount          decimal.Decimal
	TransRef        string
}

// Verify matches a slip against the active receiving accounts. It never
// marks a reference verified; the only write is the idempotent pending row
// recording the first check, so a retry is always safe.
func (s *Service) Verify(ctx context.Context, cmd VerifyCommand) (*domain.SlipMatch, error) {
	suffix := validate.AccountSuffix(cmd.ReceiverAccount)

	if cmd.TransRef != "" {
		ref, err := s.transferRepo.FindByRef(ctx, cmd.TransRef)
		if err != nil {
			return nil, err
		}
		if ref != nil && ref.Status == domain.VerifiedTransferStatus {
			zap.L().Info("transfer reference already redeemed", zap.String("trans_ref", cmd.TransRef))
			return nil, ErrDuplicateTransRef
		}
		if ref == nil {
			if err := s.transferRepo.CreatePending(ctx, cmd.TransRef); err != nil {
				return nil, err
			}
		}
	}

	accounts, err := s.accountRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccountsConfigured
	}

	// Either field alone may match: slip sources garble one field or the
	// other. On disagreement the account-number match wins.
	var bySuffix, byName *domain.Account
	for i := range accounts {
		if bySuffix == nil && suffix != "" && accounts[i].AccountSuffix == suffix {
			bySuffix = &accounts[i]
		}
		if byName == nil && cmd.ReceiverName != "" && accounts[i].ReceiverName == cmd.ReceiverName {
			byName = &accounts[i]
		}
	}

	matched, matchedBy := bySuffix, domain.MatchedBySuffix
	if matched == nil {
		matched, matchedBy = byName, domain.MatchedByName
	}
	if matched == nil {
		return nil, ErrAccountMismatch
	}

	displayName := matched.FullName
	if displayName == "" {
		displayName = matched.DisplayName
	}
	if displayName == "" {
		displayName = cmd.ReceiverName
	}

	return &domain.SlipMatch{
		Account:     *matched,
		DisplayName: displayName,
		MatchedBy:   matchedBy,
	}, nil
}

// Apply credits the balance and marks the reference verified as one
// transaction. The verified transition is a conditional upsert, so of two
// concurrent redemptions of the same reference exactly one commits and the
// other fails with ErrDuplicateTransRef.
func (s *Service) Apply(ctx context.Context, userID int, match *domain.SlipMatch, amount decimal.Decimal, transRef string) (*domain.Balance, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if transRef != "" {
			ref := &domain.TransferReference{
				TransRef:  transRef,
				UserID:    &userID,
				AccountID: &match.Account.ID,
				Amount:    amount,
			}
			won, err := s.transferRepo.MarkVerified(ctx, ref)
			if err != nil {
				return err
			}
			if !won {
				return ErrDuplicateTransRef
			}
		}

		b, err := s.balanceRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateTransRef) {
			zap.L().Error("can't apply top-up", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("top-up applied", zap.Int("user_id", userID), zap.String("amount", amount.String()))
	if s.notifier != nil {
		s.notifier.TopupApplied(userID, amount, transRef)
	}
	return balance, nil
}
