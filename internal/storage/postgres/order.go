package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lojinha/checkout-service/internal/domain/order"
)

const saveOrderSQL = `INSERT INTO orders
	(id, owner_id, owner_name, owner_email, owner_tier, items, final_total, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at`

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save persists a candidate order under a freshly assigned id and returns the
// authoritative record. Cart items are serialized to JSON for the JSONB
// column.
func (r *OrderRepository) Save(ctx context.Context, candidate order.Candidate) (*order.Order, error) {
	itemsJSON, err := json.Marshal(candidate.Cart.Items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal cart items")
	}

	id := uuid.New().String()
	owner := candidate.Cart.Owner

	var createdAt time.Time
	err = r.pool.QueryRow(ctx, saveOrderSQL,
		id, owner.ID, owner.Name, owner.Email, string(owner.Tier),
		itemsJSON, candidate.FinalTotal, string(candidate.Status),
	).Scan(&createdAt)
	if err != nil {
		return nil, errors.Wrapf(err, "save order %q", id)
	}

	return &order.Order{
		ID:         id,
		Cart:       candidate.Cart,
		FinalTotal: candidate.FinalTotal,
		Status:     candidate.Status,
		CreatedAt:  createdAt,
	}, nil
}
