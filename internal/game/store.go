package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultPlanTTL = 2 * time.Hour

// PlanStore keeps launched games until they finish or expire.
type PlanStore interface {
	Save(ctx context.Context, g *Game) error
	Load(ctx context.Context, id uuid.UUID) (*Game, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RedisPlanStore stores games as JSON with a TTL so abandoned sessions expire.
type RedisPlanStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ PlanStore = (*RedisPlanStore)(nil)

func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	if ttl <= 0 {
		ttl = defaultPlanTTL
	}
	return &RedisPlanStore{client: client, ttl: ttl}
}

func planKey(id uuid.UUID) string {
	return fmt.Sprintf("game:plan:%s", id.String())
}

func (s *RedisPlanStore) Save(ctx context.Context, g *Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	return s.client.Set(ctx, planKey(g.ID), data, s.ttl).Err()
}

// Load returns nil, nil when the game is unknown or expired.
func (s *RedisPlanStore) Load(ctx context.Context, id uuid.UUID) (*Game, error) {
	data, err := s.client.Get(ctx, planKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &g, nil
}

func (s *RedisPlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, planKey(id)).Err()
}
