package distractor

import (
	"slices"
	"sort"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
)

// DefaultPoolCap bounds how many top-scored candidates take part in the
// hard-mode weighted draw.
const DefaultPoolCap = 15

// Selector picks wrong answers for a question.
type Selector struct {
	rng     Rand
	poolCap int
}

// NewSelector creates a selector. A nil rng falls back to SystemRand.
func NewSelector(rng Rand) *Selector {
	if rng == nil {
		rng = SystemRand()
	}
	return &Selector{rng: rng, poolCap: DefaultPoolCap}
}

// Rand exposes the selector's random source so callers can share it.
func (s *Selector) Rand() Rand {
	return s.rng
}

// Select returns up to count distinct distractors for target drawn from
// candidates. The target itself is never returned. In hard mode, candidates
// visually similar to the target are favored; a target without attributes
// gets uniform sampling. Callers must treat a short result as infeasible.
func (s *Selector) Select(target country.Country, candidates []country.Country, count int, index flags.Index, hard bool) []country.Country {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}
	pool := eligible(target, candidates)
	if len(pool) == 0 {
		return nil
	}

	if !hard {
		return s.uniform(pool, count)
	}
	targetAttrs, ok := index.Lookup(target.Code)
	if !ok {
		return s.uniform(pool, count)
	}

	picked := s.weighted(targetAttrs, pool, count, index)
	if len(picked) >= count {
		return picked
	}

	chosen := make(map[string]struct{}, len(picked))
	for _, c := range picked {
		chosen[c.Code] = struct{}{}
	}
	rest := make([]country.Country, 0, len(pool)-len(picked))
	for _, c := range pool {
		if _, ok := chosen[c.Code]; !ok {
			rest = append(rest, c)
		}
	}
	return append(picked, s.uniform(rest, count-len(picked))...)
}

func (s *Selector) uniform(pool []country.Country, count int) []country.Country {
	shuffled := Shuffled(s.rng, pool)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

type rankedCandidate struct {
	country country.Country
	score   float64
	weight  float64
}

// weighted draws without replacement from the top-scored attributed
// candidates, weighting each by its rank.
func (s *Selector) weighted(target flags.Attributes, pool []country.Country, count int, index flags.Index) []country.Country {
	ranked := make([]rankedCandidate, 0, len(pool))
	for _, c := range pool {
		attrs, ok := index.Lookup(c.Code)
		if !ok {
			continue
		}
		ranked = append(ranked, rankedCandidate{country: c, score: flags.Score(target, attrs)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > s.poolCap {
		ranked = ranked[:s.poolCap]
	}
	for i := range ranked {
		ranked[i].weight = float64(len(ranked) - i)
	}

	picked := make([]country.Country, 0, count)
	for len(picked) < count && len(ranked) > 0 {
		idx := s.draw(ranked)
		picked = append(picked, ranked[idx].country)
		ranked = slices.Delete(ranked, idx, idx+1)
	}
	return picked
}

// draw picks one index with probability proportional to its weight.
func (s *Selector) draw(ranked []rankedCandidate) int {
	total := 0.0
	for _, r := range ranked {
		total += r.weight
	}
	remainder := s.rng.Float64() * total
	for i, r := range ranked {
		remainder -= r.weight
		if remainder <= 0 {
			return i
		}
	}
	// float rounding can leave a sliver of remainder
	return len(ranked) - 1
}

// TopSimilar returns up to n candidates ordered by similarity to target.
// Candidates without attributes sort after every attributed one.
func TopSimilar(target country.Country, candidates []country.Country, n int, index flags.Index) []country.Country {
	if n <= 0 {
		return nil
	}
	pool := eligible(target, candidates)
	targetAttrs, _ := index.Lookup(target.Code)

	type entry struct {
		country    country.Country
		score      float64
		attributed bool
	}
	entries := make([]entry, len(pool))
	for i, c := range pool {
		attrs, ok := index.Lookup(c.Code)
		entries[i] = entry{country: c, attributed: ok}
		if ok {
			entries[i].score = flags.Score(targetAttrs, attrs)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].attributed != entries[j].attributed {
			return entries[i].attributed
		}
		return entries[i].score > entries[j].score
	})

	if n > len(entries) {
		n = len(entries)
	}
	out := make([]country.Country, n)
	for i := range out {
		out[i] = entries[i].country
	}
	return out
}

// eligible copies candidates without the target and without duplicate codes.
func eligible(target country.Country, candidates []country.Country) []country.Country {
	out := make([]country.Country, 0, len(candidates))
	seen := map[string]struct{}{target.Code: {}}
	for _, c := range candidates {
		if _, ok := seen[c.Code]; ok {
			continue
		}
		seen[c.Code] = struct{}{}
		out = append(out, c)
	}
	return out
}
