package quiz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Settings{MaxRounds: 1, OptionCount: 2}, Settings{MaxRounds: -4, OptionCount: 0}.Normalize())
	assert.Equal(t, Settings{MaxRounds: 10, OptionCount: 9, HighDifficulty: true}, Settings{MaxRounds: 99, OptionCount: 12, HighDifficulty: true}.Normalize())
	assert.Equal(t, Settings{MaxRounds: 5, OptionCount: 4}, Settings{MaxRounds: 5, OptionCount: 4}.Normalize())
}

func TestParseSettings(t *testing.T) {
	defaults := Settings{MaxRounds: 6, OptionCount: 3}

	tests := []struct {
		name string
		raw  map[string]any
		want Settings
	}{
		{"nil blob", nil, defaults},
		{"empty blob", map[string]any{}, defaults},
		{"well formed", map[string]any{KeyMaxRounds: 4, KeyOptionCount: 5, KeyHighDifficulty: true}, Settings{4, 5, true}},
		{"json numbers", map[string]any{KeyMaxRounds: 4.0, KeyOptionCount: 8.9}, Settings{4, 8, false}},
		{"numeric strings", map[string]any{KeyMaxRounds: "7", KeyHighDifficulty: "true"}, Settings{7, 3, true}},
		{"out of range", map[string]any{KeyMaxRounds: 500, KeyOptionCount: -2}, Settings{10, 2, false}},
		{"huge float", map[string]any{KeyMaxRounds: 1e300}, Settings{10, 3, false}},
		{"nan and inf", map[string]any{KeyMaxRounds: math.NaN(), KeyOptionCount: math.Inf(1)}, defaults},
		{"garbage", map[string]any{KeyMaxRounds: "lots", KeyOptionCount: []int{1}, KeyHighDifficulty: "maybe"}, defaults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSettings(tt.raw, defaults))
		})
	}
}

func TestParseSettingsClampsDefaults(t *testing.T) {
	got := ParseSettings(map[string]any{}, Settings{MaxRounds: 0, OptionCount: 40})
	assert.Equal(t, Settings{MaxRounds: 1, OptionCount: 9}, got)
}

func TestBlobRoundTrip(t *testing.T) {
	s := Settings{MaxRounds: 3, OptionCount: 6, HighDifficulty: true}
	assert.Equal(t, s, ParseSettings(s.Blob(), DefaultSettings()))
}
