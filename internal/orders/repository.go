package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order for the buyer with the given email, creating the
// buyer with placeholder names on first checkout. Buyer upsert and order
// insert share one transaction, so a failed insert never leaves an orphaned
// buyer. Repeated checkout with the same email reuses the buyer row but
// always produces a new order; there is no dedup.
func (r *OrderRepository) Create(ctx context.Context, email string, items []domain.LineItem, total float64) (*domain.Order, error) {
	snapshot, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode item snapshot: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	// The no-op update keeps an existing buyer's fields untouched while
	// still returning its id.
	var buyerID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO buyers (id, email, business_name, contact_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET email = excluded.email
		RETURNING id
	`, uuid.New().String(), email, domain.PlaceholderBusinessName, domain.PlaceholderContactName, now).Scan(&buyerID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:        uuid.New().String(),
		BuyerID:   buyerID,
		Items:     string(snapshot),
		Subtotal:  total,
		Status:    domain.OrderStatusProcessing,
		Notes:     domain.DefaultOrderNotes,
		CreatedAt: now,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, buyer_id, items, subtotal, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, order.BuyerID, order.Items, order.Subtotal, order.Status, order.Notes, order.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return order, nil
}

// ListByEmail returns every order owned by the buyer with this email, newest
// first. Unknown emails and buyers without orders yield an empty slice.
func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.buyer_id, o.items, o.subtotal, o.status, o.notes, o.created_at
		FROM orders o
		JOIN buyers b ON b.id = o.buyer_id
		WHERE b.email = $1
		ORDER BY o.created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.BuyerID, &order.Items, &order.Subtotal, &order.Status, &order.Notes, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetBuyerByEmail returns nil when no buyer with this email exists.
func (r *OrderRepository) GetBuyerByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	buyer := &domain.Buyer{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, business_name, contact_name, created_at
		FROM buyers
		WHERE email = $1
	`, email).Scan(&buyer.ID, &buyer.Email, &buyer.BusinessName, &buyer.ContactName, &buyer.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return buyer, nil
}
