package engine

import (
	"slices"
	"testing"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allSlotSets returns every sorted multiset of three ingredient kinds.
func allSlotSets() [][model.SlotCount]model.Ingredient {
	var sets [][model.SlotCount]model.Ingredient
	for a := 0; a < model.KindCount; a++ {
		for b := a; b < model.KindCount; b++ {
			for c := b; c < model.KindCount; c++ {
				sets = append(sets, [model.SlotCount]model.Ingredient{
					model.Ingredient(a), model.Ingredient(b), model.Ingredient(c),
				})
			}
		}
	}
	return sets
}

func TestBuildDemand(t *testing.T) {
	tests := []struct {
		name     string
		wantKey  string
		wantKind []model.Ingredient
		wantCost []int
		slots    [model.SlotCount]model.Ingredient
	}{
		{
			name:     "two of one kind",
			slots:    [model.SlotCount]model.Ingredient{0, 0, 1},
			wantKind: []model.Ingredient{0, 1},
			wantCost: []int{2, 3},
			wantKey:  "0,0,1",
		},
		{
			name:     "three of one kind",
			slots:    [model.SlotCount]model.Ingredient{2, 2, 2},
			wantKind: []model.Ingredient{2},
			wantCost: []int{27},
			wantKey:  "2,2,2",
		},
		{
			name:     "unsorted distinct kinds",
			slots:    [model.SlotCount]model.Ingredient{9, 5, 7},
			wantKind: []model.Ingredient{5, 7, 9},
			wantCost: []int{243, 2187, 19683},
			wantKey:  "5,7,9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := BuildDemand(tt.slots)
			assert.Equal(t, tt.wantKind, d.Kinds)
			assert.Equal(t, tt.wantCost, d.Costs)
			assert.Equal(t, tt.wantKey, d.Key)
		})
	}
}

func TestBuildDemand_Invariants(t *testing.T) {
	sets := allSlotSets()
	require.Len(t, sets, 220)

	for _, slots := range sets {
		// Feed the slots reversed so sorting is exercised.
		reversed := [model.SlotCount]model.Ingredient{slots[2], slots[1], slots[0]}
		d := BuildDemand(reversed)

		raw := 0
		for _, s := range slots {
			raw += s.Weight()
		}
		assert.Equal(t, raw, d.TotalCost(), "cost sum for %v", slots)
		assert.True(t, slices.IsSorted(d.Kinds), "kinds sorted for %v", slots)
		assert.Len(t, d.Costs, len(d.Kinds))

		units := 0
		for _, k := range d.Kinds {
			require.NotZero(t, d.Required[k])
			units += int(d.Required[k])
		}
		assert.Equal(t, model.SlotCount, units)
		assert.Equal(t, model.SlotKey(slots), d.Key)
	}
}
