package quiz

import (
	"errors"
	"fmt"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
	"github.com/gokatarajesh/flag-quiz/internal/quiz/distractor"
)

// ErrInfeasible means the pool cannot satisfy the requested configuration.
// It is an expected outcome, never a partial plan.
var ErrInfeasible = errors.New("not enough data for this configuration")

// RoundPlanItem is one round: the question country and, for multiple-choice
// modes, its shuffled options including the question exactly once.
type RoundPlanItem struct {
	Question country.Country   `json:"question"`
	Options  []country.Country `json:"options"`
}

// RoundPlan is the ordered, immutable sequence of rounds for one game.
type RoundPlan []RoundPlanItem

// Round returns round n, 1-indexed.
func (p RoundPlan) Round(n int) (RoundPlanItem, bool) {
	if n < 1 || n > len(p) {
		return RoundPlanItem{}, false
	}
	return p[n-1], true
}

// OptionCount is the number of options per round (0 for no-option plans).
func (p RoundPlan) OptionCount() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0].Options)
}

// Planner builds round plans. It never mutates its inputs.
type Planner struct {
	selector *distractor.Selector
}

// NewPlanner creates a planner; a nil selector uses the system random source.
func NewPlanner(selector *distractor.Selector) *Planner {
	if selector == nil {
		selector = distractor.NewSelector(nil)
	}
	return &Planner{selector: selector}
}

// Plan builds a plan for mode over pool. Settings are clamped first.
func (p *Planner) Plan(mode Mode, pool []country.Country, settings Settings, index flags.Index) (RoundPlan, error) {
	settings = settings.Normalize()
	snapshot := country.Dedupe(pool)

	switch m := mode.(type) {
	case NoOptionMode:
		return p.planNoOption(snapshot, settings)
	case ChoiceMode:
		return p.planChoice(snapshot, settings, index)
	case MemoryMode:
		return p.planMemory(m.Category, snapshot, settings, index)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMode, mode)
	}
}

func (p *Planner) planNoOption(pool []country.Country, s Settings) (RoundPlan, error) {
	if len(pool) < s.MaxRounds {
		return nil, fmt.Errorf("%w: need %d countries, have %d", ErrInfeasible, s.MaxRounds, len(pool))
	}
	order := distractor.Shuffled(p.selector.Rand(), pool)
	plan := make(RoundPlan, s.MaxRounds)
	for i := range plan {
		plan[i] = RoundPlanItem{Question: order[i], Options: []country.Country{}}
	}
	return plan, nil
}

// planChoice consumes a shuffled queue so no country appears in two rounds.
func (p *Planner) planChoice(pool []country.Country, s Settings, index flags.Index) (RoundPlan, error) {
	need := s.MaxRounds * s.OptionCount
	if len(pool) < need {
		return nil, fmt.Errorf("%w: need %d countries for %d rounds of %d options, have %d",
			ErrInfeasible, need, s.MaxRounds, s.OptionCount, len(pool))
	}

	queue := distractor.Shuffled(p.selector.Rand(), pool)
	plan := make(RoundPlan, 0, s.MaxRounds)
	for round := 1; round <= s.MaxRounds; round++ {
		if len(queue) == 0 {
			return nil, fmt.Errorf("%w: queue exhausted at round %d", ErrInfeasible, round)
		}
		question, rest := queue[0], queue[1:]
		picked := p.selector.Select(question, rest, s.OptionCount-1, index, s.HighDifficulty)
		if len(picked) < s.OptionCount-1 {
			return nil, fmt.Errorf("%w: round %d got %d of %d distractors",
				ErrInfeasible, round, len(picked), s.OptionCount-1)
		}
		queue = without(rest, picked)
		plan = append(plan, RoundPlanItem{Question: question, Options: p.options(question, picked)})
	}
	return plan, nil
}

// planMemory asks every category member exactly once, drawing distractors
// from the other members only. MaxRounds does not apply.
func (p *Planner) planMemory(category Category, pool []country.Country, s Settings, index flags.Index) (RoundPlan, error) {
	members := category.Members(pool, index)
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: category %s has %d countries", ErrInfeasible, category, len(members))
	}
	optionCount := min(s.OptionCount, len(members))

	order := distractor.Shuffled(p.selector.Rand(), members)
	plan := make(RoundPlan, 0, len(order))
	for i, question := range order {
		picked := p.selector.Select(question, members, optionCount-1, index, s.HighDifficulty)
		if len(picked) < optionCount-1 {
			return nil, fmt.Errorf("%w: round %d got %d of %d distractors",
				ErrInfeasible, i+1, len(picked), optionCount-1)
		}
		plan = append(plan, RoundPlanItem{Question: question, Options: p.options(question, picked)})
	}
	return plan, nil
}

func (p *Planner) options(question country.Country, distractors []country.Country) []country.Country {
	opts := make([]country.Country, 0, len(distractors)+1)
	opts = append(opts, question)
	opts = append(opts, distractors...)
	return distractor.Shuffled(p.selector.Rand(), opts)
}

// without returns a new slice of in minus every code in drop.
func without(in, drop []country.Country) []country.Country {
	skip := make(map[string]struct{}, len(drop))
	for _, c := range drop {
		skip[c.Code] = struct{}{}
	}
	out := make([]country.Country, 0, len(in))
	for _, c := range in {
		if _, ok := skip[c.Code]; !ok {
			out = append(out, c)
		}
	}
	return out
}
