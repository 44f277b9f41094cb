package orderrepo

import (
	"context"

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

// Create inserts the order header and its line items. It issues plain
// statements so the caller can wrap it, together with the balance debit,
// into one transaction.
func (r *Repository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	headerQuery := `
		INSERT INTO orders (number, user_id, first_name, last_name, phone, address, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, headerQuery,
		order.Number, order.UserID, order.FirstName, order.LastName,
		order.Phone, order.Address, order.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order header", zap.Error(err))
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_name, product_image, price, quantity, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i := range items {
		items[i].OrderID = order.ID
		items[i].Position = i
		_, err := r.db.Exec(ctx, itemQuery,
			items[i].OrderID, items[i].ProductName, items[i].ProductImage,
			items[i].Price, items[i].Quantity, items[i].Position,
		)
		if err != nil {
			zap.L().Error("can't save order item", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, number, user_id, first_name, last_name, phone, address, total, status, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.Number, &order.UserID, &order.FirstName, &order.LastName,
			&order.Phone, &order.Address, &order.Total, &order.Status, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_name, product_image, price, quantity, position
        FROM order_items
        WHERE order_id = $1
        ORDER BY position ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductName, &item.ProductImage, &item.Price, &item.Quantity, &item.Position)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
