package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// HintCounter is the persisted hint count, a single-row table mutated
// with atomic increments. It implements quiz.HintCounter.
type HintCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newHintCounter ensures the counter table exists and seeds it at zero.
func newHintCounter(db *sql.DB) (*HintCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS hint_count (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		return nil, fmt.Errorf("create hint count table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO hint_count (id, value) VALUES (1, 0)`)
	if err != nil {
		return nil, fmt.Errorf("seed hint count: %w", err)
	}

	return &HintCounter{db: db}, nil
}

// Increment atomically bumps the counter and returns the new value.
func (c *HintCounter) Increment(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	err := c.db.QueryRowContext(ctx,
		`UPDATE hint_count SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment hint count: %w", err)
	}
	return n, nil
}

// Value returns the current counter value.
func (c *HintCounter) Value(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM hint_count WHERE id = 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("read hint count: %w", err)
	}
	return n, nil
}

// Reset sets the counter back to zero.
func (c *HintCounter) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.ExecContext(ctx,
		`UPDATE hint_count SET value = 0 WHERE id = 1`,
	); err != nil {
		return fmt.Errorf("reset hint count: %w", err)
	}
	return nil
}
