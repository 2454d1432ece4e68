package quiz

import (
	"math"

	"github.com/spf13/cast"
)

// Settings bounds.
const (
	MinRounds  = 1
	MaxRounds  = 10
	MinOptions = 2
	MaxOptions = 9
)

// Blob keys used when settings travel as a loosely typed key-value map.
const (
	KeyMaxRounds      = "max_rounds"
	KeyOptionCount    = "option_count"
	KeyHighDifficulty = "high_difficulty"
)

// Settings is the per-game configuration supplied by the player.
type Settings struct {
	MaxRounds      int  `json:"max_rounds"`
	OptionCount    int  `json:"option_count"`
	HighDifficulty bool `json:"high_difficulty"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{MaxRounds: MaxRounds, OptionCount: 4}
}

// Normalize clamps every field into its allowed range.
func (s Settings) Normalize() Settings {
	s.MaxRounds = clampInt(s.MaxRounds, MinRounds, MaxRounds)
	s.OptionCount = clampInt(s.OptionCount, MinOptions, MaxOptions)
	return s
}

// Blob renders settings as a key-value map.
func (s Settings) Blob() map[string]any {
	return map[string]any{
		KeyMaxRounds:      s.MaxRounds,
		KeyOptionCount:    s.OptionCount,
		KeyHighDifficulty: s.HighDifficulty,
	}
}

// ParseSettings coerces a loosely typed blob into bounded Settings. Missing,
// non-numeric or non-finite values fall back to defaults; numbers are clamped.
func ParseSettings(raw map[string]any, defaults Settings) Settings {
	defaults = defaults.Normalize()
	if raw == nil {
		return defaults
	}
	return Settings{
		MaxRounds:      numberField(raw[KeyMaxRounds], defaults.MaxRounds, MinRounds, MaxRounds),
		OptionCount:    numberField(raw[KeyOptionCount], defaults.OptionCount, MinOptions, MaxOptions),
		HighDifficulty: boolField(raw[KeyHighDifficulty], defaults.HighDifficulty),
	}
}

func numberField(v any, def, lo, hi int) int {
	if v == nil {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	f = math.Max(float64(lo), math.Min(float64(hi), math.Trunc(f)))
	return int(f)
}

func boolField(v any, def bool) bool {
	if v == nil {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
