package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	headerQuery := regexp.QuoteMeta(`INSERT INTO orders (number, user_id, first_name, last_name, phone, address, total, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`)
	itemQuery := regexp.QuoteMeta(`INSERT INTO order_items (order_id, product_name, product_image, price, quantity, position) VALUES ($1, $2, $3, $4, $5, $6)`)

	userID := 1
	createdAt := time.Now()

	newOrder := func() *domain.Order {
		return &domain.Order{
			Number:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			UserID:    &userID,
			FirstName: "Somchai",
			LastName:  "Jaidee",
			Phone:     "0812345678",
			Address:   "99/1 Sukhumvit Rd, Bangkok",
			Total:     decimal.NewFromInt(500),
			Status:    domain.PendingOrderStatus,
		}
	}
	newItems := func() []domain.OrderItem {
		return []domain.OrderItem{
			{ProductName: "Keycap set", ProductImage: "keycaps.png", Price: decimal.NewFromInt(250), Quantity: 2},
		}
	}

	tests := []struct {
		name      string
		order     *domain.Order
		items     []domain.OrderItem
		mockSetup func(order *domain.Order)
		expectErr bool
	}{
		{
			name:  "Header and items inserted",
			order: newOrder(),
			items: newItems(),
			mockSetup: func(order *domain.Order) {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt)
				mock.ExpectQuery(headerQuery).
					WithArgs(order.Number, order.UserID, order.FirstName, order.LastName, order.Phone, order.Address, order.Total, order.Status).
					WillReturnRows(rows)
				mock.ExpectExec(itemQuery).
					WithArgs(10, "Keycap set", "keycaps.png", decimal.NewFromInt(250), 2, 0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:  "Header insert fails",
			order: newOrder(),
			items: newItems(),
			mockSetup: func(order *domain.Order) {
				mock.ExpectQuery(headerQuery).
					WithArgs(order.Number, order.UserID, order.FirstName, order.LastName, order.Phone, order.Address, order.Total, order.Status).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:  "Item insert fails",
			order: newOrder(),
			items: newItems(),
			mockSetup: func(order *domain.Order) {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt)
				mock.ExpectQuery(headerQuery).
					WithArgs(order.Number, order.UserID, order.FirstName, order.LastName, order.Phone, order.Address, order.Total, order.Status).
					WillReturnRows(rows)
				mock.ExpectExec(itemQuery).
					WithArgs(10, "Keycap set", "keycaps.png", decimal.NewFromInt(250), 2, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.order)
			err := repo.Create(context.Background(), tt.order, tt.items)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, tt.order.ID)
				assert.Equal(t, createdAt, tt.order.CreatedAt)
			}
		})
	}
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, number, user_id, first_name, last_name, phone, address, total, status, created_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC`)

	userID := 1
	createdAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		want      int
	}{
		{
			name: "Orders found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "number", "user_id", "first_name", "last_name", "phone", "address", "total", "status", "created_at"}).
					AddRow(1, "num-1", &userID, "Somchai", "Jaidee", "0812345678", "Bangkok", decimal.NewFromInt(500), domain.PendingOrderStatus, createdAt).
					AddRow(2, "num-2", &userID, "Somchai", "Jaidee", "0812345678", "Bangkok", decimal.NewFromInt(120), domain.PendingOrderStatus, createdAt)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			want:      2,
		},
		{
			name: "No orders",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "number", "user_id", "first_name", "last_name", "phone", "address", "total", "status", "created_at"})
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			want:      0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			orders, err := repo.FindOrdersByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, orders, tt.want)
		})
	}
}

func TestRepository_FindItemsByOrderID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, order_id, product_name, product_image, price, quantity, position FROM order_items WHERE order_id = $1 ORDER BY position ASC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		want      []domain.OrderItem
	}{
		{
			name: "Items returned in position order",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "order_id", "product_name", "product_image", "price", "quantity", "position"}).
					AddRow(1, 10, "Keycap set", "keycaps.png", decimal.NewFromInt(250), 2, 0).
					AddRow(2, 10, "Switch pack", "switches.png", decimal.NewFromInt(120), 1, 1)
				mock.ExpectQuery(query).WithArgs(10).WillReturnRows(rows)
			},
			expectErr: false,
			want: []domain.OrderItem{
				{ID: 1, OrderID: 10, ProductName: "Keycap set", ProductImage: "keycaps.png", Price: decimal.NewFromInt(250), Quantity: 2, Position: 0},
				{ID: 2, OrderID: 10, ProductName: "Switch pack", ProductImage: "switches.png", Price: decimal.NewFromInt(120), Quantity: 1, Position: 1},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			items, err := repo.FindItemsByOrderID(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, items)
		})
	}
}
