package transferrepo

import (
	"context"
	"time"

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

func (r *Repository) FindByRef(ctx context.Context, transRef string) (*domain.TransferReference, error) {
	query := `
        SELECT id, trans_ref, user_id, account_id, amount, status, created_at, verified_at
        FROM transfer_refs
        WHERE trans_ref = $1
    `
	row := r.db.QueryRow(ctx, query, transRef)
	var ref domain.TransferReference
	err := row.Scan(&ref.ID, &ref.TransRef, &ref.UserID, &ref.AccountID, &ref.Amount, &ref.Status, &ref.CreatedAt, &ref.VerifiedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transfer reference", zap.Error(err))
		return nil, err
	}
	return &ref, nil
}

// CreatePending records the first check of a slip. Idempotent: a later check
// of the same reference leaves the existing row untouched.
func (r *Repository) CreatePending(ctx context.Context, transRef string) error {
	query := `
		INSERT INTO transfer_refs (trans_ref, status)
		VALUES ($1, 'pending')
		ON CONFLICT (trans_ref) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, transRef)
	if err != nil {
		zap.L().Error("can't create pending transfer reference", zap.Error(err))
		return err
	}
	return nil
}

// MarkVerified transitions a reference to verified with a single conditional
// upsert. Of two concurrent redemptions exactly one sees an affected row;
// the loser gets false and must be rejected as a duplicate.
func (r *Repository) MarkVerified(ctx context.Context, ref *domain.TransferReference) (bool, error) {
	query := `
		INSERT INTO transfer_refs (trans_ref, user_id, account_id, amount, status, verified_at)
		VALUES ($1, $2, $3, $4, 'verified', now())
		ON CONFLICT (trans_ref) DO UPDATE
		SET user_id = EXCLUDED.user_id, account_id = EXCLUDED.account_id,
			amount = EXCLUDED.amount, status = 'verified', verified_at = now()
		WHERE transfer_refs.status <> 'verified'
	`
	tag, err := r.db.Exec(ctx, query, ref.TransRef, ref.UserID, ref.AccountID, ref.Amount)
	if err != nil {
		zap.L().Error("can't mark transfer reference verified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.TransferReference, error) {
	query := `
        SELECT id, trans_ref, user_id, account_id, amount, status, created_at, verified_at
        FROM transfer_refs
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, before, int(limit))
	if err != nil {
		zap.L().Error("can't get stale pending transfer references", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var refs []domain.TransferReference
	for rows.Next() {
		var ref domain.TransferReference
		err := rows.Scan(&ref.ID, &ref.TransRef, &ref.UserID, &ref.AccountID, &ref.Amount, &ref.Status, &ref.CreatedAt, &ref.VerifiedAt)
		if err != nil {
			zap.L().Error("can't scan transfer reference row", zap.Error(err))
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// DeletePending never touches verified rows, so a reference redeemed while
// the sweeper was running stays recorded.
func (r *Repository) DeletePending(ctx context.Context, transRef string) error {
	query := `
		DELETE FROM transfer_refs
		WHERE trans_ref = $1 AND status = 'pending'
	`
	_, err := r.db.Exec(ctx, query, transRef)
	if err != nil {
		zap.L().Error("can't delete pending transfer reference", zap.Error(err))
		return err
	}
	return nil
}
