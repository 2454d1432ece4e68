package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/flag-quiz/internal/country"
)

func entity(code, common, official string) country.Country {
	return country.Country{Code: code, Names: country.Names{Name: country.Name{Common: common, Official: official}}}
}

func TestResolveExactBeatsLoose(t *testing.T) {
	e := entity("CIV", "Côte d'Ivoire", "Republic of Côte d'Ivoire")
	e.Names.Translations = map[string]country.Name{
		"fra": {Common: "Côte d'Ivoire", Official: "République de Côte d' Ivoire"},
	}
	raw := map[string]Attributes{
		"Côte d'Ivoire":            {Color: Tags{"orange", "white", "green"}},
		"RépubliquedeCôted'Ivoire": {Color: Tags{"wrong"}},
	}

	idx := NewResolver("fra").Resolve([]country.Country{e}, raw)
	require.Contains(t, idx, "CIV")
	assert.Equal(t, Tags{"orange", "white", "green"}, idx["CIV"].Color)
}

func TestResolveExactOnLowerPriorityNameBeatsLooseOnHigher(t *testing.T) {
	e := entity("KOR", "South Korea", "Republic of Korea")
	raw := map[string]Attributes{
		"SouthKorea":        {Group: Tags{"loose"}},
		"Republic of Korea": {Group: Tags{"exact"}},
	}
	idx := NewResolver("").Resolve([]country.Country{e}, raw)
	assert.Equal(t, Tags{"exact"}, idx["KOR"].Group)
}

func TestResolveLooseFallback(t *testing.T) {
	e := entity("GNB", "Guinea-Bissau", "Republic of Guinea-Bissau")
	raw := map[string]Attributes{
		"  Republic  of Guinea-Bissau ": {Motif: Tags{"star"}},
	}
	idx := NewResolver("").Resolve([]country.Country{e}, raw)
	assert.Equal(t, Tags{"star"}, idx["GNB"].Motif)
}

func TestResolveInterpunctAndNormalization(t *testing.T) {
	// decomposed "é" in the raw key, composed in the entity name
	e := entity("STP", "São Tomé and Príncipe", "")
	raw := map[string]Attributes{
		"Sa\u0303o\u00b7Tome\u0301 and Pri\u0301ncipe": {Layout: Tags{"horizontal-bands"}},
	}
	idx := NewResolver("").Resolve([]country.Country{e}, raw)
	assert.Equal(t, Tags{"horizontal-bands"}, idx["STP"].Layout)
}

func TestResolveOmitsUnmatched(t *testing.T) {
	idx := NewResolver("").Resolve(
		[]country.Country{entity("AAA", "Atlantis", "")},
		map[string]Attributes{"Lemuria": {}},
	)
	_, ok := idx.Lookup("AAA")
	assert.False(t, ok)
	assert.Empty(t, idx)
}

func TestLoadRawKeepsExplicitEmptyMotif(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attrs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Japan": {"color": ["red", "white"], "motif": ["sun"]},
		"France": {"color": ["blue", "white", "red"], "layout": ["vertical-bands"], "motif": []},
		"Nowhere": {"color": ["grey"]}
	}`), 0o600))

	raw, err := LoadRaw(path)
	require.NoError(t, err)
	assert.True(t, raw["France"].HasMotifData())
	assert.Empty(t, raw["France"].Motif)
	assert.False(t, raw["Nowhere"].HasMotifData())
	assert.True(t, raw["Japan"].Motif.Contains("sun"))
}

func TestLoadRawMissingFile(t *testing.T) {
	_, err := LoadRaw(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
