// Package wordpool hands out non-repeating items per difficulty tier.
// Every item in a tier is seen once per lap before any repeats; usage
// tracking is scoped to the pool instance, so concurrent sessions sharing
// one catalog never contaminate each other.
package wordpool

import (
	"errors"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/AhmetShbz/wordrush/internal/catalog"
)

// ErrExhausted is returned when the backing catalog has no items at all for
// the requested tier. Callers must treat this as a configuration failure,
// not a gameplay outcome.
var ErrExhausted = errors.New("wordpool: no items for tier")

// Pool selects items from a catalog without repeats within a lap.
type Pool struct {
	cat  *catalog.Catalog
	used map[catalog.Tier]map[string]bool
	rng  *rand.Rand
}

// New creates a pool over the given catalog. rng may be nil, in which case
// a time-seeded source is used; tests inject a fixed seed.
func New(cat *catalog.Catalog, rng *rand.Rand) *Pool {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pool{
		cat:  cat,
		used: make(map[catalog.Tier]map[string]bool),
		rng:  rng,
	}
}

// SelectNext draws a uniformly random unused item from the tier and marks it
// used. When the lap is complete the used set for that tier is cleared and
// selection retried once, so small pools cycle instead of starving.
func (p *Pool) SelectNext(tier catalog.Tier) (catalog.Item, error) {
	if item, ok := p.draw(tier); ok {
		return item, nil
	}

	// Lap complete: reset this tier and go again.
	p.ResetTier(tier)
	if item, ok := p.draw(tier); ok {
		return item, nil
	}
	return catalog.Item{}, ErrExhausted
}

// draw picks a random unused item for the tier, if any remain.
func (p *Pool) draw(tier catalog.Tier) (catalog.Item, bool) {
	used := p.used[tier]
	available := lo.Filter(p.cat.ByTier(tier), func(it catalog.Item, _ int) bool {
		return !used[it.ID]
	})
	if len(available) == 0 {
		return catalog.Item{}, false
	}

	item := available[p.rng.IntN(len(available))]
	if used == nil {
		used = make(map[string]bool)
		p.used[tier] = used
	}
	used[item.ID] = true
	return item, true
}

// ResetTier clears the used set for a tier, starting a fresh lap.
func (p *Pool) ResetTier(tier catalog.Tier) {
	delete(p.used, tier)
}

// Remaining reports how many unused items are left in the current lap.
func (p *Pool) Remaining(tier catalog.Tier) int {
	used := p.used[tier]
	return lo.CountBy(p.cat.ByTier(tier), func(it catalog.Item) bool {
		return !used[it.ID]
	})
}

// Decoys returns up to n distinct answer texts from the tier, excluding the
// item with excludeID and any answer equal to its own. Used by choice-based
// modes to build wrong options.
func (p *Pool) Decoys(tier catalog.Tier, excludeID string, n int) []string {
	candidates := p.cat.Answers(tier, excludeID)
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	candidates = lo.Uniq(candidates)
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
