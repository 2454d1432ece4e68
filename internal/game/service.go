package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
	"github.com/gokatarajesh/flag-quiz/internal/quiz"
	"github.com/gokatarajesh/flag-quiz/internal/quiz/distractor"
)

// SettingsStore persists a player's settings as a key-value blob.
type SettingsStore interface {
	Get(ctx context.Context, playerID uuid.UUID) (map[string]any, error)
	Save(ctx context.Context, playerID uuid.UUID, blob map[string]any) error
}

// ServiceOptions configures gameplay defaults.
type ServiceOptions struct {
	Defaults     quiz.Settings
	SimilarCount int
}

// Service launches games from the in-memory catalogue and replays stored plans.
type Service struct {
	catalog  *country.Catalog
	index    flags.Index
	planner  *quiz.Planner
	plans    PlanStore
	settings SettingsStore
	metrics  *Metrics
	logger   zerolog.Logger

	defaults     quiz.Settings
	similarCount int
	now          func() time.Time
}

// NewService wires the game service. settings and metrics may be nil.
func NewService(catalog *country.Catalog, index flags.Index, planner *quiz.Planner, plans PlanStore, settings SettingsStore, metrics *Metrics, opts ServiceOptions, logger zerolog.Logger) *Service {
	if planner == nil {
		planner = quiz.NewPlanner(nil)
	}
	defaults := opts.Defaults
	if defaults == (quiz.Settings{}) {
		defaults = quiz.DefaultSettings()
	}
	similar := opts.SimilarCount
	if similar <= 0 {
		similar = 5
	}
	return &Service{
		catalog:      catalog,
		index:        index,
		planner:      planner,
		plans:        plans,
		settings:     settings,
		metrics:      metrics,
		logger:       logger.With().Str("component", "game").Logger(),
		defaults:     defaults.Normalize(),
		similarCount: similar,
		now:          time.Now,
	}
}

// Launch plans a new game and stores it for replay. An infeasible
// configuration returns an error wrapping quiz.ErrInfeasible.
func (s *Service) Launch(ctx context.Context, req LaunchRequest) (*Game, error) {
	mode, err := quiz.ParseMode(req.Mode, req.Category)
	if err != nil {
		return nil, err
	}

	settings, err := s.resolveSettings(ctx, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	plan, err := s.planner.Plan(mode, s.catalog.All(), settings, s.index)
	elapsed := time.Since(started).Seconds()
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, quiz.ErrInfeasible) {
			outcome = outcomeInfeasible
		}
		s.metrics.observe(mode.Family(), outcome, elapsed)
		s.logger.Info().Err(err).Str("mode", string(mode.Kind())).Str("family", mode.Family()).Msg("plan rejected")
		return nil, err
	}
	s.metrics.observe(mode.Family(), outcomeOK, elapsed)

	g := &Game{
		ID:        uuid.New(),
		Mode:      mode.Kind(),
		Family:    mode.Family(),
		Settings:  settings,
		Plan:      plan,
		PlayerID:  req.PlayerID,
		CreatedAt: s.now().UTC(),
	}
	if m, ok := mode.(quiz.MemoryMode); ok {
		category := m.Category
		g.Category = &category
	}

	if err := s.plans.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	s.logger.Debug().
		Str("game_id", g.ID.String()).
		Str("mode", string(g.Mode)).
		Int("rounds", len(plan)).
		Int("options", plan.OptionCount()).
		Bool("hard", settings.HighDifficulty).
		Msg("game launched")
	return g, nil
}

func (s *Service) resolveSettings(ctx context.Context, req LaunchRequest) (quiz.Settings, error) {
	base := s.defaults
	if req.PlayerID != nil && s.settings != nil {
		stored, err := s.PlayerSettings(ctx, *req.PlayerID)
		if err != nil {
			return quiz.Settings{}, err
		}
		base = stored
	}
	if req.Settings == nil {
		return base, nil
	}
	return quiz.ParseSettings(req.Settings, base), nil
}

// Game loads a launched game.
func (s *Service) Game(ctx context.Context, id uuid.UUID) (*Game, error) {
	g, err := s.plans.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Round returns round n (1-indexed) of a launched game along with the total round count.
func (s *Service) Round(ctx context.Context, id uuid.UUID, n int) (quiz.RoundPlanItem, int, error) {
	g, err := s.Game(ctx, id)
	if err != nil {
		return quiz.RoundPlanItem{}, 0, err
	}
	item, ok := g.Plan.Round(n)
	if !ok {
		return quiz.RoundPlanItem{}, len(g.Plan), fmt.Errorf("%w: %d of %d", ErrRoundOutOfRange, n, len(g.Plan))
	}
	return item, len(g.Plan), nil
}

// Abandon discards a game's plan.
func (s *Service) Abandon(ctx context.Context, id uuid.UUID) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	s.logger.Debug().Str("game_id", id.String()).Msg("game discarded")
	return nil
}

// Similar lists the flags most similar to code, for post-answer display.
// n <= 0 uses the configured default.
func (s *Service) Similar(_ context.Context, code string, n int) ([]country.Country, error) {
	target, ok := s.catalog.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCountryNotFound, code)
	}
	if n <= 0 {
		n = s.similarCount
	}
	return distractor.TopSimilar(target, s.catalog.All(), n, s.index), nil
}

// PlayerSettings returns the player's stored settings, or defaults.
func (s *Service) PlayerSettings(ctx context.Context, playerID uuid.UUID) (quiz.Settings, error) {
	if s.settings == nil {
		return s.defaults, nil
	}
	blob, err := s.settings.Get(ctx, playerID)
	if err != nil {
		return quiz.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return quiz.ParseSettings(blob, s.defaults), nil
}

// SavePlayerSettings normalizes raw over the player's current settings and persists the result.
func (s *Service) SavePlayerSettings(ctx context.Context, playerID uuid.UUID, raw map[string]any) (quiz.Settings, error) {
	if s.settings == nil {
		return quiz.Settings{}, fmt.Errorf("settings storage not configured")
	}
	current, err := s.PlayerSettings(ctx, playerID)
	if err != nil {
		return quiz.Settings{}, err
	}
	next := quiz.ParseSettings(raw, current)
	if err := s.settings.Save(ctx, playerID, next.Blob()); err != nil {
		return quiz.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return next, nil
}
