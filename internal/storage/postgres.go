package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rretrocar/storefront-go/internal/cart"
)

// CartStore keeps each session's cart as one JSON blob keyed by session,
// implementing cart.Store on Postgres.
type CartStore struct {
	db *sql.DB
}

func NewCartStore(db *sql.DB) *CartStore {
	return &CartStore{db: db}
}

func (s *CartStore) Load(ctx context.Context, key string) ([]cart.Line, error) {
	const query = `SELECT items FROM carts WHERE session_key = $1`

	var blob []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cart blob: %w", err)
	}

	var lines []cart.Line
	if err := json.Unmarshal(blob, &lines); err != nil {
		return nil, fmt.Errorf("decode cart blob: %w", err)
	}
	return lines, nil
}

func (s *CartStore) Save(ctx context.Context, key string, lines []cart.Line) error {
	if lines == nil {
		lines = []cart.Line{}
	}
	blob, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart blob: %w", err)
	}

	const upsert = `
INSERT INTO carts (session_key, items, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (session_key) DO UPDATE
SET items = EXCLUDED.items, updated_at = NOW()
`
	if _, err := s.db.ExecContext(ctx, upsert, key, blob); err != nil {
		return fmt.Errorf("upsert cart blob: %w", err)
	}
	return nil
}
