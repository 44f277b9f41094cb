package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wkittisak/shoppay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Account
		expectedError error
	}{
		{
			name: "Accounts listed",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Account{
					{ID: 1, AccountSuffix: "7890"},
				}, nil)
			},
			expected: []domain.Account{{ID: 1, AccountSuffix: "7890"}},
		},
		{
			name: "Error listing accounts",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			accounts, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, accounts)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		cmd           AccountCommand
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Suffix derived from the account number",
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", ReceiverName: "Somchai J.", IsActive: true},
			prepareMock: func() {
				repo.EXPECT().ActiveSuffixExists(gomock.Any(), "7890", 0).Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						assert.Equal(t, "7890", account.AccountSuffix)
						account.ID = 1
						return account, nil
					})
			},
		},
		{
			name:          "Number without digits is rejected",
			cmd:           AccountCommand{AccountNumber: "xxx-xxx", IsActive: true},
			prepareMock:   func() {},
			expectedError: ErrInvalidAccountNumber,
		},
		{
			name: "Duplicate active suffix is rejected",
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", IsActive: true},
			prepareMock: func() {
				repo.EXPECT().ActiveSuffixExists(gomock.Any(), "7890", 0).Return(true, nil)
			},
			expectedError: ErrDuplicateSuffix,
		},
		{
			name: "Inactive account may reuse a suffix",
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", IsActive: false},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
						account.ID = 2
						return account, nil
					})
			},
		},
		{
			name: "Cannot save account",
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", IsActive: true},
			prepareMock: func() {
				repo.EXPECT().ActiveSuffixExists(gomock.Any(), "7890", 0).Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Create(context.Background(), tt.cmd)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.Equal(t, tt.cmd.AccountNumber, account.AccountNumber)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	existing := func() *domain.Account {
		return &domain.Account{ID: 1, AccountNumber: "123-4-56789-0", AccountSuffix: "7890", IsActive: true}
	}

	tests := []struct {
		name          string
		id            int
		cmd           AccountCommand
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Account updated with a new suffix",
			id:   1,
			cmd:  AccountCommand{AccountNumber: "987-6-54321-0", IsActive: true},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing(), nil)
				repo.EXPECT().ActiveSuffixExists(gomock.Any(), "4321", 1).Return(false, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, account *domain.Account) error {
						assert.Equal(t, "4321", account.AccountSuffix)
						return nil
					})
			},
		},
		{
			name: "Unknown account",
			id:   99,
			cmd:  AccountCommand{AccountNumber: "987-6-54321-0"},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "Duplicate active suffix is rejected",
			id:   1,
			cmd:  AccountCommand{AccountNumber: "987-6-54321-0", IsActive: true},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing(), nil)
				repo.EXPECT().ActiveSuffixExists(gomock.Any(), "4321", 1).Return(true, nil)
			},
			expectedError: ErrDuplicateSuffix,
		},
		{
			name: "Deactivating skips the suffix check",
			id:   1,
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", IsActive: false},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Cannot update account",
			id:   1,
			cmd:  AccountCommand{AccountNumber: "123-4-56789-0", IsActive: false},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Update(context.Background(), tt.id, tt.cmd)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Account deleted",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name: "Unknown account",
			id:   99,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "Cannot delete account",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 1).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
