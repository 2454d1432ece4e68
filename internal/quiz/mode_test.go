package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Flag_To_Map ", nil)
	require.NoError(t, err)
	assert.IsType(t, NoOptionMode{}, m)
	assert.Equal(t, KindFlagToMap, m.Kind())
	assert.Equal(t, "no_option", m.Family())

	m, err = ParseMode("name_to_flag", nil)
	require.NoError(t, err)
	assert.IsType(t, ChoiceMode{}, m)
	assert.Equal(t, "choice", m.Family())

	m, err = ParseMode("map_to_flag", &Category{Kind: "Region", Value: " asia "})
	require.NoError(t, err)
	memory, ok := m.(MemoryMode)
	require.True(t, ok)
	assert.Equal(t, Category{Kind: CategoryRegion, Value: "Asia"}, memory.Category)
	assert.Equal(t, "memory", m.Family())
}

func TestParseModeErrors(t *testing.T) {
	_, err := ParseMode("guess_the_anthem", nil)
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = ParseMode("flag_to_map", &Category{Kind: CategoryRegion, Value: "Asia"})
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = ParseMode("flag_to_name", &Category{Kind: CategoryRegion, Value: "Atlantis"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseMode("flag_to_name", &Category{Kind: "anthem", Value: "x"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseMode("flag_to_name", &Category{Kind: CategoryMotif, Value: " "})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategoryContains(t *testing.T) {
	index := flags.Index{
		"JPN": {Color: flags.Tags{"red", "white"}, Motif: flags.Tags{"sun"}, Group: flags.Tags{"minimal"}},
		"FRA": {Color: flags.Tags{"blue", "white", "red"}, Layout: flags.Tags{"vertical-bands"}, Motif: flags.Tags{}},
		"XXX": {Color: flags.Tags{"grey"}},
	}
	jpn := country.Country{Code: "JPN", Region: country.RegionAsia}
	fra := country.Country{Code: "FRA", Region: country.RegionEurope}
	xxx := country.Country{Code: "XXX", Region: country.RegionEurope}
	unknown := country.Country{Code: "UNK", Region: country.RegionEurope}

	tests := []struct {
		category Category
		country  country.Country
		want     bool
	}{
		{Category{CategoryRegion, "Asia"}, jpn, true},
		{Category{CategoryRegion, "Asia"}, fra, false},
		{Category{CategoryRegion, "Europe"}, unknown, true},
		{Category{CategoryMotif, "sun"}, jpn, true},
		{Category{CategoryMotif, NoMotif}, fra, true},
		{Category{CategoryMotif, NoMotif}, xxx, false},
		{Category{CategoryMotif, NoMotif}, unknown, false},
		{Category{CategoryLayout, "vertical-bands"}, fra, true},
		{Category{CategoryColor, "white"}, jpn, true},
		{Category{CategoryGroup, "minimal"}, fra, false},
	}
	for _, tt := range tests {
		t.Run(tt.category.String()+"/"+tt.country.Code, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Contains(tt.country, index))
		})
	}
}
