package engine

import "github.com/Veraticus/alembic/internal/model"

// CostPrefix holds cumulative weighted inventory values:
// prefix[i] is the sum of inventory[k]*weight[k] for k < i.
type CostPrefix [model.KindCount + 1]int

// ComputePrefix builds the cost prefix of an inventory.
func ComputePrefix(inv model.Inventory) CostPrefix {
	var p CostPrefix
	for i, n := range inv {
		p[i+1] = p[i] + n*model.TierWeight(i)
	}
	return p
}

// Range returns the weighted inventory value of kinds from..to inclusive.
func (p CostPrefix) Range(from, to int) int {
	return p[to+1] - p[from]
}

// Exact reports whether the range check is equivalent to a per-unit check
// for this inventory: the value held in kinds below k never reaches the
// weight of kind k, so lower kinds can never stand in for a unit of k.
// Holds whenever every count is at most 2.
func (p CostPrefix) Exact() bool {
	for k := 1; k < model.KindCount; k++ {
		if p[k] >= model.TierWeight(k) {
			return false
		}
	}
	return true
}

// CacheStats counts prefix cache lookups.
type CacheStats struct {
	Hits   int
	Misses int
}

// prefixCache memoizes the prefix of the most recent inventory only.
type prefixCache struct {
	key    string
	stats  CacheStats
	prefix CostPrefix
	exact  bool
	valid  bool
}

// lookup returns the prefix for inv, recomputing it when the signature changed.
// Inventories with out-of-range counts are never reported exact, since their
// weighted sums may have wrapped.
func (c *prefixCache) lookup(inv model.Inventory) (CostPrefix, bool) {
	key := inv.Signature()
	if c.valid && c.key == key {
		c.stats.Hits++
		return c.prefix, c.exact
	}

	c.stats.Misses++
	c.prefix = ComputePrefix(inv)
	c.exact = inv.Bounded() && c.prefix.Exact()
	c.key = key
	c.valid = true
	return c.prefix, c.exact
}
