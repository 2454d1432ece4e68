package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names what the player is shown and what they answer with.
type Kind string

const (
	KindFlagToMap  Kind = "flag_to_map"
	KindNameToFlag Kind = "name_to_flag"
	KindFlagToName Kind = "flag_to_name"
	KindMapToFlag  Kind = "map_to_flag"
)

// UsesOptions reports whether the kind is answered by multiple choice.
func (k Kind) UsesOptions() bool {
	switch k {
	case KindNameToFlag, KindFlagToName, KindMapToFlag:
		return true
	}
	return false
}

func (k Kind) valid() bool {
	return k == KindFlagToMap || k.UsesOptions()
}

var (
	ErrUnknownMode     = errors.New("unknown game mode")
	ErrInvalidCategory = errors.New("invalid category")
)

// Mode selects the planning strategy. It is a closed set: NoOptionMode,
// ChoiceMode and MemoryMode.
type Mode interface {
	Kind() Kind
	Family() string
	isMode()
}

// NoOptionMode asks the player to answer without choices (e.g. locate on map).
type NoOptionMode struct {
	kind Kind
}

func (m NoOptionMode) Kind() Kind     { return m.kind }
func (m NoOptionMode) Family() string { return "no_option" }
func (NoOptionMode) isMode()          {}

// ChoiceMode draws every question and option from the global pool, never
// reusing a country across rounds.
type ChoiceMode struct {
	kind Kind
}

func (m ChoiceMode) Kind() Kind     { return m.kind }
func (m ChoiceMode) Family() string { return "choice" }
func (ChoiceMode) isMode()          {}

// MemoryMode is a complete-coverage drill over one category.
type MemoryMode struct {
	kind     Kind
	Category Category
}

func (m MemoryMode) Kind() Kind     { return m.kind }
func (m MemoryMode) Family() string { return "memory" }
func (MemoryMode) isMode()          {}

// ParseMode maps a wire kind and optional category onto a Mode variant.
// A category turns any multiple-choice kind into a memory drill.
func ParseMode(kind string, category *Category) (Mode, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, kind)
	}
	if category != nil {
		if !k.UsesOptions() {
			return nil, fmt.Errorf("%w: memory drills need a multiple-choice kind, got %q", ErrUnknownMode, kind)
		}
		c, err := category.normalized()
		if err != nil {
			return nil, err
		}
		return MemoryMode{kind: k, Category: c}, nil
	}
	if k.UsesOptions() {
		return ChoiceMode{kind: k}, nil
	}
	return NoOptionMode{kind: k}, nil
}
