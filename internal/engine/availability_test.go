package engine

import (
	"testing"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCheckPrefix_Scenario(t *testing.T) {
	recipeA := BuildDemand([model.SlotCount]model.Ingredient{0, 0, 1})
	recipeB := BuildDemand([model.SlotCount]model.Ingredient{2, 2, 2})

	have := ComputePrefix(model.Inventory{2, 1})
	assert.True(t, CheckPrefix(have, recipeA), "A needs exactly what is held")
	assert.False(t, CheckPrefix(have, recipeB), "B needs three greed")

	empty := ComputePrefix(model.Inventory{})
	assert.False(t, CheckPrefix(empty, recipeA))
	assert.False(t, CheckPrefix(empty, recipeB))
}

func TestCheckNaive(t *testing.T) {
	tests := []struct {
		name  string
		inv   model.Inventory
		slots [model.SlotCount]model.Ingredient
		want  bool
	}{
		{name: "exact match", inv: model.Inventory{2, 1}, slots: [model.SlotCount]model.Ingredient{0, 0, 1}, want: true},
		{name: "one short", inv: model.Inventory{1, 1}, slots: [model.SlotCount]model.Ingredient{0, 0, 1}, want: false},
		{name: "triple", inv: model.Inventory{2: 3}, slots: [model.SlotCount]model.Ingredient{2, 2, 2}, want: true},
		{name: "triple short", inv: model.Inventory{2: 2}, slots: [model.SlotCount]model.Ingredient{2, 2, 2}, want: false},
		{name: "surplus elsewhere", inv: model.Inventory{9, 9, 9}, slots: [model.SlotCount]model.Ingredient{3, 4, 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.inv
			assert.Equal(t, tt.want, CheckNaive(tt.inv, tt.slots))
			assert.Equal(t, before, tt.inv, "inventory must not be modified")
		})
	}
}

func TestCheckPrefix_MatchesNaiveOnExactInventories(t *testing.T) {
	sets := allSlotSets()
	demands := make([]Demand, len(sets))
	for i, s := range sets {
		demands[i] = BuildDemand(s)
	}

	// Every count in {0,1,2} for the kinds 0..5, a fixed pattern above.
	var inv model.Inventory
	for code := 0; code < 729; code++ {
		c := code
		for k := 0; k < 6; k++ {
			inv[k] = c % 3
			c /= 3
		}
		inv[6], inv[7], inv[8], inv[9] = code%2, 1, 2, code%3

		prefix := ComputePrefix(inv)
		if !assert.True(t, prefix.Exact(), "inventory %v", inv) {
			continue
		}
		for i, d := range demands {
			assert.Equal(t, CheckNaive(inv, sets[i]), CheckPrefix(prefix, d),
				"slots %v inventory %v", sets[i], inv)
		}
	}
}

func TestCheckPrefix_SubstitutesLowerKinds(t *testing.T) {
	// Five ire are worth more than one guilt, so the range check lets the
	// surplus stand in for the missing guilt.
	inv := model.Inventory{5}
	slots := [model.SlotCount]model.Ingredient{0, 0, 1}

	prefix := ComputePrefix(inv)
	assert.False(t, prefix.Exact())
	assert.True(t, CheckPrefix(prefix, BuildDemand(slots)))
	assert.False(t, CheckNaive(inv, slots))
}
