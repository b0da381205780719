package engine

import "github.com/Veraticus/alembic/internal/model"

// Demand is the normalized ingredient requirement of one recipe.
// Kinds is sorted ascending and holds each required kind once; Costs[i] is
// Required[Kinds[i]] times the weight of Kinds[i].
type Demand struct {
	Key      string
	Kinds    []model.Ingredient
	Costs    []int
	Required [model.KindCount]uint8
}

// BuildDemand tallies the three slots of a recipe into a Demand.
// Slots must be valid ingredient kinds.
func BuildDemand(slots [model.SlotCount]model.Ingredient) Demand {
	var d Demand
	for _, s := range slots {
		d.Required[s]++
	}

	d.Kinds = make([]model.Ingredient, 0, model.SlotCount)
	d.Costs = make([]int, 0, model.SlotCount)
	for k, n := range d.Required {
		if n == 0 {
			continue
		}
		kind := model.Ingredient(k)
		d.Kinds = append(d.Kinds, kind)
		d.Costs = append(d.Costs, int(n)*kind.Weight())
	}

	d.Key = model.SlotKey(slots)
	return d
}

// TotalCost returns the sum of the per-kind costs.
func (d Demand) TotalCost() int {
	total := 0
	for _, c := range d.Costs {
		total += c
	}
	return total
}
