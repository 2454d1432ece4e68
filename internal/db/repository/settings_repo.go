package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type settingsStore interface {
	GetPlayerSettings(ctx context.Context, playerID pgtype.UUID) ([]byte, error)
	UpsertPlayerSettings(ctx context.Context, playerID pgtype.UUID, blob []byte) error
}

// SettingsRepository persists per-player game settings as a JSON blob.
type SettingsRepository struct {
	store settingsStore
}

// NewSettingsRepository wraps Queries for settings operations.
func NewSettingsRepository(store settingsStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the stored blob; a player with no row yields a nil map.
func (r *SettingsRepository) Get(ctx context.Context, playerID uuid.UUID) (map[string]any, error) {
	raw, err := r.store.GetPlayerSettings(ctx, pgUUID(playerID))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var blob map[string]any
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("decode settings blob: %w", err)
	}
	return blob, nil
}

// Save overwrites the player's blob.
func (r *SettingsRepository) Save(ctx context.Context, playerID uuid.UUID, blob map[string]any) error {
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode settings blob: %w", err)
	}
	return r.store.UpsertPlayerSettings(ctx, pgUUID(playerID), raw)
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}
