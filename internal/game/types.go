package game

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gokatarajesh/flag-quiz/internal/quiz"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrRoundOutOfRange = errors.New("round out of range")
	ErrCountryNotFound = errors.New("country not found")
)

// Game is a launched session: its configuration and the precomputed plan.
type Game struct {
	ID        uuid.UUID      `json:"id"`
	Mode      quiz.Kind      `json:"mode"`
	Family    string         `json:"family"`
	Category  *quiz.Category `json:"category,omitempty"`
	Settings  quiz.Settings  `json:"settings"`
	Plan      quiz.RoundPlan `json:"plan"`
	PlayerID  *uuid.UUID     `json:"player_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// LaunchRequest starts a game. Settings, when present, override the
// player's stored settings key by key.
type LaunchRequest struct {
	Mode     string         `json:"mode"`
	Category *quiz.Category `json:"category,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
	PlayerID *uuid.UUID     `json:"player_id,omitempty"`
}
