package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wkittisak/shoppay/internal/domain"
	"github.com/wkittisak/shoppay/internal/dto"
	accountservice "github.com/wkittisak/shoppay/internal/service/accountservice"
	"github.com/wkittisak/shoppay/pkg/utils"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func accountBody() string {
	body, _ := json.Marshal(dto.AccountRequestDTO{
		AccountNumber: "123-4-56789-0",
		ReceiverName:  "Somchai J.",
		DisplayName:   "Main",
		FullName:      "Somchai Jaidee",
		IsActive:      true,
	})
	return string(body)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Accounts listed",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return([]domain.Account{
					{ID: 1, AccountSuffix: "7890", CreatedAt: time.Now()},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Storage failure",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/slip-accounts", nil)
			rr := httptest.NewRecorder()

			handler.List(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.AccountResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedErr  string
	}{
		{
			name: "Account created",
			body: accountBody(),
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Account{
					ID:            1,
					AccountNumber: "123-4-56789-0",
					AccountSuffix: "7890",
					IsActive:      true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         "{not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION",
		},
		{
			name: "Account number without digits",
			body: accountBody(),
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, accountservice.ErrInvalidAccountNumber)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION",
		},
		{
			name: "Duplicate active suffix",
			body: accountBody(),
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, accountservice.ErrDuplicateSuffix)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "DUPLICATE_SUFFIX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/slip-accounts", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp.Code)
			} else {
				var resp dto.AccountResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "7890", resp.AccountSuffix)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Account updated",
			id:   "1",
			body: accountBody(),
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, gomock.Any()).Return(&domain.Account{
					ID:            1,
					AccountSuffix: "7890",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid account id",
			id:           "abc",
			body:         accountBody(),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Account not found",
			id:   "99",
			body: accountBody(),
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPut, "/api/admin/slip-accounts/"+tt.id, bytes.NewBufferString(tt.body))
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Account deleted",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid account id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Account not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 99).Return(accountservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/slip-accounts/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
