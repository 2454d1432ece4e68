package flags

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tags is a tag group. A nil Tags means the group has no data at all, while a
// non-nil empty Tags is an explicit "none".
type Tags []string

// Contains reports whether tag is in the group.
func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

func (t Tags) set() map[string]struct{} {
	out := make(map[string]struct{}, len(t))
	for _, v := range t {
		out[v] = struct{}{}
	}
	return out
}

// Attributes are the visual tags describing one flag.
type Attributes struct {
	Color  Tags `json:"color,omitempty"`
	Layout Tags `json:"layout,omitempty"`
	Motif  Tags `json:"motif"`
	Group  Tags `json:"group,omitempty"`
	Region Tags `json:"region,omitempty"`
}

// HasMotifData distinguishes an explicitly empty motif list from a missing one.
func (a Attributes) HasMotifData() bool {
	return a.Motif != nil
}

// Index maps a country code to its flag attributes. Countries without a
// resolvable match are absent.
type Index map[string]Attributes

// Lookup returns the attributes for code, if known.
func (idx Index) Lookup(code string) (Attributes, bool) {
	if idx == nil {
		return Attributes{}, false
	}
	a, ok := idx[code]
	return a, ok
}

// LoadRaw reads the name-keyed attribute resource from disk.
func LoadRaw(path string) (map[string]Attributes, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	raw := map[string]Attributes{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode flag attributes: %w", err)
	}
	return raw, nil
}
