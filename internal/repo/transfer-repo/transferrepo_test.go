package transferrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wkittisak/shoppay/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByRef(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, trans_ref, user_id, account_id, amount, status, created_at, verified_at FROM transfer_refs WHERE trans_ref = $1`)

	userID := 1
	accountID := 2
	createdAt := time.Now()

	tests := []struct {
		name      string
		transRef  string
		mockSetup func()
		expectErr bool
		result    *domain.TransferReference
	}{
		{
			name:     "Existing reference found",
			transRef: "2024042199000123456",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "trans_ref", "user_id", "account_id", "amount", "status", "created_at", "verified_at"}).
					AddRow(1, "2024042199000123456", &userID, &accountID, decimal.NewFromInt(500), domain.VerifiedTransferStatus, createdAt, (*time.Time)(nil))
				mock.ExpectQuery(query).
					WithArgs("2024042199000123456").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.TransferReference{
				ID:        1,
				TransRef:  "2024042199000123456",
				UserID:    &userID,
				AccountID: &accountID,
				Amount:    decimal.NewFromInt(500),
				Status:    domain.VerifiedTransferStatus,
				CreatedAt: createdAt,
			},
		},
		{
			name:     "Unknown reference returns nil",
			transRef: "unknown",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("unknown").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			transRef: "2024042199000123456",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("2024042199000123456").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByRef(context.Background(), tt.transRef)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreatePending(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO transfer_refs (trans_ref, status) VALUES ($1, 'pending') ON CONFLICT (trans_ref) DO NOTHING`)

	tests := []struct {
		name      string
		transRef  string
		mockSetup func()
		expectErr bool
	}{
		{
			name:     "First check inserts pending row",
			transRef: "2024042199000123456",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("2024042199000123456").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:     "Repeated check is a no-op",
			transRef: "2024042199000123456",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("2024042199000123456").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
		},
		{
			name:     "Database error",
			transRef: "2024042199000123456",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("2024042199000123456").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreatePending(context.Background(), tt.transRef)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_MarkVerified(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO transfer_refs (trans_ref, user_id, account_id, amount, status, verified_at) VALUES ($1, $2, $3, $4, 'verified', now()) ON CONFLICT (trans_ref) DO UPDATE SET user_id = EXCLUDED.user_id, account_id = EXCLUDED.account_id, amount = EXCLUDED.amount, status = 'verified', verified_at = now() WHERE transfer_refs.status <> 'verified'`)

	userID := 1
	accountID := 2
	ref := &domain.TransferReference{
		TransRef:  "2024042199000123456",
		UserID:    &userID,
		AccountID: &accountID,
		Amount:    decimal.NewFromInt(500),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantWon   bool
	}{
		{
			name: "First redemption wins",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(ref.TransRef, ref.UserID, ref.AccountID, ref.Amount).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			wantWon:   true,
		},
		{
			name: "Already verified reference loses",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(ref.TransRef, ref.UserID, ref.AccountID, ref.Amount).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
			wantWon:   false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(ref.TransRef, ref.UserID, ref.AccountID, ref.Amount).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			wantWon:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.MarkVerified(context.Background(), ref)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantWon, won)
		})
	}
}

func TestRepository_FindStalePending(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, trans_ref, user_id, account_id, amount, status, created_at, verified_at FROM transfer_refs WHERE status = 'pending' AND created_at < $1 ORDER BY created_at ASC LIMIT $2`)

	before := time.Now().Add(-24 * time.Hour)
	createdAt := before.Add(-time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantRefs  int
	}{
		{
			name: "Stale pending references found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "trans_ref", "user_id", "account_id", "amount", "status", "created_at", "verified_at"}).
					AddRow(1, "ref-1", (*int)(nil), (*int)(nil), decimal.Zero, domain.PendingTransferStatus, createdAt, (*time.Time)(nil)).
					AddRow(2, "ref-2", (*int)(nil), (*int)(nil), decimal.Zero, domain.PendingTransferStatus, createdAt, (*time.Time)(nil))
				mock.ExpectQuery(query).
					WithArgs(before, 1000).
					WillReturnRows(rows)
			},
			expectErr: false,
			wantRefs:  2,
		},
		{
			name: "Nothing stale",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "trans_ref", "user_id", "account_id", "amount", "status", "created_at", "verified_at"})
				mock.ExpectQuery(query).
					WithArgs(before, 1000).
					WillReturnRows(rows)
			},
			expectErr: false,
			wantRefs:  0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(before, 1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			wantRefs:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			refs, err := repo.FindStalePending(context.Background(), before, 1000)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, refs, tt.wantRefs)
		})
	}
}

func TestRepository_DeletePending(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`DELETE FROM transfer_refs WHERE trans_ref = $1 AND status = 'pending'`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pending reference deleted",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("ref-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Verified reference untouched",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("ref-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("ref-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.DeletePending(context.Background(), "ref-1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
