package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

const accountColumns = "id, account_number, account_suffix, receiver_name, display_name, full_name, is_active, created_at"

func scanAccount(row pgx.Row, account *domain.Account) error {
	return row.Scan(
		&account.ID,
		&account.AccountNumber,
		&account.AccountSuffix,
		&account.ReceiverName,
		&account.DisplayName,
		&account.FullName,
		&account.IsActive,
		&account.CreatedAt,
	)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM slip_accounts
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get slip accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			zap.L().Error("can't scan slip account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM slip_accounts
        WHERE is_active
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active slip accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			zap.L().Error("can't scan slip account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM slip_accounts
        WHERE id = $1
    `
	var account domain.Account
	err := scanAccount(r.db.QueryRow(ctx, query, id), &account)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find slip account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// ActiveSuffixExists reports whether another active account already uses the
// suffix; excludeID skips the row being updated.
func (r *Repository) ActiveSuffixExists(ctx context.Context, suffix string, excludeID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM slip_accounts
            WHERE account_suffix = $1 AND is_active AND id <> $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, suffix, excludeID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check slip account suffix", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO slip_accounts (account_number, account_suffix, receiver_name, display_name, full_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		account.AccountNumber, account.AccountSuffix, account.ReceiverName,
		account.DisplayName, account.FullName, account.IsActive,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't save slip account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE slip_accounts
		SET account_number = $1, account_suffix = $2, receiver_name = $3,
			display_name = $4, full_name = $5, is_active = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		account.AccountNumber, account.AccountSuffix, account.ReceiverName,
		account.DisplayName, account.FullName, account.IsActive, account.ID,
	)
	if err != nil {
		zap.L().Error("can't update slip account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM slip_accounts
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete slip account", zap.Error(err))
		return err
	}
	return nil
}
