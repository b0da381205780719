package engine

import "github.com/Veraticus/alembic/internal/model"

// CheckPrefix runs the carry-forward range check. Kinds are visited in
// ascending order; the value of every kind since the previous required kind
// is added to the running budget, the cost of the current kind is paid from
// it, and any surplus carries to the next kind.
//
// The result equals a per-unit check only when prefix.Exact() holds.
func CheckPrefix(prefix CostPrefix, d Demand) bool {
	available := 0
	for i, kind := range d.Kinds {
		from := 0
		if i > 0 {
			from = int(d.Kinds[i-1]) + 1
		}

		available += prefix.Range(from, int(kind))
		if available < d.Costs[i] {
			return false
		}
		available -= d.Costs[i]
	}
	return true
}

// CheckNaive consumes one unit per slot from a copy of the inventory.
func CheckNaive(inv model.Inventory, slots [model.SlotCount]model.Ingredient) bool {
	for _, s := range slots {
		inv[s]--
		if inv[s] < 0 {
			return false
		}
	}
	return true
}
