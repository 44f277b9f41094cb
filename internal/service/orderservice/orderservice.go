package orderservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error)
}

type BalanceRepo interface {
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

type Service struct {
	repo        Repo
	balanceRepo BalanceRepo
	txManager   pg.TXManager
}

func New(repo Repo, balanceRepo BalanceRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		balanceRepo: balanceRepo,
		txManager:   txManager,
	}
}

var (
	ErrMissingShippingInfo = errors.New("missing required shipping info")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrZeroTotal           = errors.New("order total must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type CheckoutItem struct {
	ProductName  string
	ProductImage string
	Price        decimal.Decimal
	Quantity     int
}

type CheckoutCommand struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Items     []CheckoutItem
}

// Checkout validates the command and commits the order header, its line
// items and — for authenticated buyers — the balance debit as one
// transaction. A guest checkout (userID nil) skips the debit entirely.
func (s *Service) Checkout(ctx context.Context, userID *int, cmd CheckoutCommand) (*domain.Order, error) {
	for _, field := range []string{cmd.FirstName, cmd.LastName, cmd.Phone, cmd.Address} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingShippingInfo
		}
	}
	if len(cmd.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]domain.OrderItem, len(cmd.Items))
	total := decimal.Zero
	for i, it := range cmd.Items {
		quantity := it.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items[i] = domain.OrderItem{
			ProductName:  it.ProductName,
			ProductImage: it.ProductImage,
			Price:        it.Price,
			Quantity:     quantity,
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}
	if !total.IsPositive() {
		return nil, ErrZeroTotal
	}

	order := &domain.Order{
		Number:    uuid.NewString(),
		UserID:    userID,
		FirstName: strings.TrimSpace(cmd.FirstName),
		LastName:  strings.TrimSpace(cmd.LastName),
		Phone:     strings.TrimSpace(cmd.Phone),
		Address:   strings.TrimSpace(cmd.Address),
		Total:     total,
		Status:    domain.PendingOrderStatus,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, order, items); err != nil {
			return err
		}
		if userID == nil {
			return nil
		}
		// The debit is a single conditional update, so the balance check
		// and the subtraction cannot be separated by a concurrent commit.
		applied, err := s.balanceRepo.Debit(ctx, *userID, total)
		if err != nil {
			return err
		}
		if !applied {
			return ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't commit order", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("order committed", zap.String("number", order.Number))
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
