package engine

import (
	"math/rand"
	"testing"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog() []model.Recipe {
	return []model.Recipe{
		{ID: 0, Slots: [model.SlotCount]model.Ingredient{0, 0, 1}, Title: "A", Description: "first recipe"},
		{ID: 1, Slots: [model.SlotCount]model.Ingredient{2, 2, 2}, Title: "B", Description: "second recipe"},
	}
}

// fullCatalog has one recipe per slot multiset.
func fullCatalog() []model.Recipe {
	sets := allSlotSets()
	recipes := make([]model.Recipe, len(sets))
	for i, s := range sets {
		recipes[i] = model.Recipe{ID: i, Slots: s, Title: model.SlotKey(s)}
	}
	return recipes
}

func randomInventory(rng *rand.Rand, maxCount int) model.Inventory {
	var inv model.Inventory
	for k := range inv {
		inv[k] = rng.Intn(maxCount + 1)
	}
	return inv
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "", want: StrategyAuto},
		{input: "auto", want: StrategyAuto},
		{input: " PREFIX ", want: StrategyPrefix},
		{input: "naive", want: StrategyNaive},
		{input: "fast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Scenario(t *testing.T) {
	for _, strategy := range []Strategy{StrategyAuto, StrategyPrefix, StrategyNaive} {
		t.Run(string(strategy), func(t *testing.T) {
			e := NewWithConfig(scenarioCatalog(), Config{Strategy: strategy})

			vis := e.Filter(model.Inventory{2, 1}, "")
			assert.Equal(t, Visibility{true, false}, vis)

			// Three greed satisfies B; A still has no ire or guilt.
			vis = e.Filter(model.Inventory{2: 3}, "")
			assert.Equal(t, Visibility{false, true}, vis)
		})
	}
}

func TestEngine_ZeroStateBypass(t *testing.T) {
	e := New(fullCatalog())

	vis := e.Filter(model.Inventory{}, "")
	require.Len(t, vis, e.Len())
	assert.Equal(t, e.Len(), vis.Count())
	assert.Equal(t, CacheStats{}, e.CacheStats(), "bypass must not touch the prefix cache")

	empty := New(nil)
	assert.Empty(t, empty.Filter(model.Inventory{}, ""))
	assert.Empty(t, empty.Filter(model.Inventory{1}, "x"))
}

func TestEngine_SearchOnly(t *testing.T) {
	recipes := []model.Recipe{
		{ID: 0, Title: "Bitter Draught", Description: "made from Regret"},
		{ID: 1, Title: "Sweet Tonic", Description: "tastes of\nregret"},
		{ID: 2, Title: "Plain Water", Description: "nothing"},
	}
	e := New(recipes)

	assert.Equal(t, Visibility{true, true, false}, e.Filter(model.Inventory{}, "REGRET"))
	assert.Equal(t, Visibility{false, true, false}, e.Filter(model.Inventory{}, "  tonic "))
	assert.Equal(t, Visibility{false, false, false}, e.Filter(model.Inventory{}, "absent"))
	// Whitespace only is a non-empty search that trims to "", which matches everything.
	assert.Equal(t, Visibility{true, true, true}, e.Filter(model.Inventory{}, "   "))
}

func TestEngine_SearchAndInventory(t *testing.T) {
	e := New(scenarioCatalog())

	assert.Equal(t, Visibility{true, false}, e.Filter(model.Inventory{2, 1}, "first"))
	assert.Equal(t, Visibility{false, false}, e.Filter(model.Inventory{2, 1}, "second"))
}

func TestEngine_Idempotent(t *testing.T) {
	e := New(fullCatalog())
	inv := model.Inventory{2, 1, 0, 1, 2, 0, 0, 1, 0, 1}

	first := e.Filter(inv, "1")
	second := e.Filter(inv, "1")
	assert.Equal(t, first, second)

	stats := e.CacheStats()
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 1, stats.Hits)
}

func TestEngine_MatchesNaive(t *testing.T) {
	recipes := fullCatalog()
	auto := New(recipes)
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 2000; n++ {
		inv := randomInventory(rng, 5)
		// Interleave an unrelated lookup so the cache changes between calls.
		if n%3 == 0 {
			_ = auto.Craftable(randomInventory(rng, 5), 0)
		}

		vis := auto.Filter(inv, "")
		for i, r := range recipes {
			want := inv.IsEmpty() || CheckNaive(inv, r.Slots)
			require.Equal(t, want, vis[i], "recipe %s inventory %v", r.Key(), inv)
			require.Equal(t, CheckNaive(inv, r.Slots), auto.Craftable(inv, i))
		}
	}
}

func TestEngine_HugeCountsMatchNaive(t *testing.T) {
	recipes := []model.Recipe{{ID: 0, Slots: [model.SlotCount]model.Ingredient{9, 9, 9}}}
	// Built directly, bypassing Set, so the weighted sum wraps around.
	inv := model.Inventory{9: 500000000000000000}

	e := New(recipes)
	assert.True(t, CheckNaive(inv, recipes[0].Slots))
	assert.True(t, e.Craftable(inv, 0))
	assert.Equal(t, Visibility{true}, e.Filter(inv, ""))

	_, err := model.ParseInventory("isolation=500000000000000000")
	assert.ErrorIs(t, err, model.ErrCountTooLarge)
}

func TestEngine_Monotonic(t *testing.T) {
	recipes := fullCatalog()
	e := New(recipes)
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 500; n++ {
		inv := randomInventory(rng, 3)
		kind := rng.Intn(model.KindCount)
		more := inv
		more[kind]++

		before := e.Filter(inv, "")
		after := e.Filter(more, "")
		for i := range recipes {
			if before[i] && !inv.IsEmpty() {
				assert.True(t, after[i], "recipe %s lost after adding kind %d to %v", recipes[i].Key(), kind, inv)
			}
		}
	}
}

func TestEngine_PrefixStrategySubstitutes(t *testing.T) {
	recipes := []model.Recipe{{ID: 0, Slots: [model.SlotCount]model.Ingredient{0, 0, 1}}}
	inv := model.Inventory{5}

	assert.True(t, NewWithConfig(recipes, Config{Strategy: StrategyPrefix}).Craftable(inv, 0))
	assert.False(t, New(recipes).Craftable(inv, 0))
	assert.False(t, NewWithConfig(recipes, Config{Strategy: StrategyNaive}).Craftable(inv, 0))
}

func TestEngine_Accessors(t *testing.T) {
	e := NewWithConfig(scenarioCatalog(), Config{})
	assert.Equal(t, StrategyAuto, e.Strategy())
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "B", e.Recipe(1).Title)
	assert.Equal(t, "2,2,2", e.Demand(1).Key)
	assert.Len(t, e.Recipes(), 2)
}

func TestMatchesSearch(t *testing.T) {
	r := model.Recipe{Title: "Liquid Courage", Description: "Best served\ncold"}
	assert.True(t, MatchesSearch(r, "courage"))
	assert.True(t, MatchesSearch(r, "served\ncold"))
	assert.True(t, MatchesSearch(r, ""))
	assert.False(t, MatchesSearch(r, "warm"))
}
