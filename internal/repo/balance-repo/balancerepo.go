package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance, topped_up_total, spent_total
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.ToppedUpTotal, &balance.SpentTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance, topped_up_total, spent_total)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, current_balance, topped_up_total, spent_total
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.ToppedUpTotal, &balance.SpentTotal)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit applies a single conditional update so two concurrent debits can
// never both pass a stale balance check. Returns false when the guard
// rejected the debit (insufficient or missing balance).
func (r *Repository) Debit(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	query := `
		UPDATE balances
		SET current_balance = current_balance - $1, spent_total = spent_total + $1
		WHERE user_id = $2 AND current_balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Credit upserts so a user whose balance row was never created still gets
// credited starting from zero.
func (r *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
		INSERT INTO balances (user_id, current_balance, topped_up_total, spent_total)
		VALUES ($1, $2, $2, 0)
		ON CONFLICT (user_id) DO UPDATE
		SET current_balance = balances.current_balance + EXCLUDED.current_balance,
			topped_up_total = balances.topped_up_total + EXCLUDED.topped_up_total
		RETURNING id, user_id, current_balance, topped_up_total, spent_total
	`
	row := r.db.QueryRow(ctx, query, userID, amount)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance, &balance.ToppedUpTotal, &balance.SpentTotal)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}
