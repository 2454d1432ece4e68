package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx shared by pools, connections and transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Queries holds the hand-written statements for the settings table.
type Queries struct {
	db DBTX
}

// New wraps a pool, connection or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const getPlayerSettings = `SELECT blob FROM player_settings WHERE player_id = $1`

// GetPlayerSettings returns the raw settings blob, or nil when the player has none.
func (q *Queries) GetPlayerSettings(ctx context.Context, playerID pgtype.UUID) ([]byte, error) {
	var blob []byte
	err := q.db.QueryRow(ctx, getPlayerSettings, playerID).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player settings: %w", err)
	}
	return blob, nil
}

const upsertPlayerSettings = `
INSERT INTO player_settings (player_id, blob, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (player_id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`

// UpsertPlayerSettings replaces the player's settings blob.
func (q *Queries) UpsertPlayerSettings(ctx context.Context, playerID pgtype.UUID, blob []byte) error {
	if _, err := q.db.Exec(ctx, upsertPlayerSettings, playerID, blob); err != nil {
		return fmt.Errorf("upsert player settings: %w", err)
	}
	return nil
}
