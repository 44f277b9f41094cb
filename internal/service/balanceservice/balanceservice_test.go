package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wkittisak/shoppay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	service := New(balanceRepo)
	defer ctrl.Finish()
	return service, balanceRepo
}

func TestGetBalance(t *testing.T) {
	service, balanceRepo := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID:         1,
					CurrentBalance: decimal.NewFromInt(100),
					ToppedUpTotal:  decimal.NewFromInt(150),
					SpentTotal:     decimal.NewFromInt(50),
				}, nil)
			},
			expectedBalance: &domain.Balance{
				UserID:         1,
				CurrentBalance: decimal.NewFromInt(100),
				ToppedUpTotal:  decimal.NewFromInt(150),
				SpentTotal:     decimal.NewFromInt(50),
			},
		},
		{
			name:   "Missing balance row reads as zero",
			userID: 2,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 2).Return(nil, nil)
			},
			expectedBalance: &domain.Balance{UserID: 2},
		},
		{
			name:   "Error fetching balance",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestCreateBalance(t *testing.T) {
	service, balanceRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Balance created",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().CreateUserBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
			},
		},
		{
			name:   "Error creating balance",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().CreateUserBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.CreateBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, balance.UserID)
			}
		})
	}
}
