package engine

import (
	"context"
	"testing"

	"github.com/Veraticus/alembic/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTotal(t *testing.T) {
	assert.Equal(t, 1, AuditTotal(AuditOptions{MaxCount: 0}))
	assert.Equal(t, 1024, AuditTotal(AuditOptions{MaxCount: 1}))
	assert.Equal(t, 59049, AuditTotal(AuditOptions{MaxCount: 2}))
	assert.Equal(t, 100, AuditTotal(AuditOptions{MaxCount: 2, Limit: 100}))
}

func TestAudit_CountsAtMostTwoAreExact(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive sweep")
	}

	var calls int
	report, err := Audit(context.Background(), fullCatalog(), AuditOptions{
		MaxCount:   2,
		OnProgress: func(_, _ int) { calls++ },
	})
	require.NoError(t, err)

	assert.Equal(t, 59049, report.Inventories)
	assert.Equal(t, report.Inventories, report.ExactInventories)
	assert.Equal(t, 0, report.PrefixMismatches)
	assert.True(t, report.OK())
	assert.Equal(t, 59049*220, report.Checks)
	assert.Positive(t, calls)
}

func TestAudit_FindsSubstitution(t *testing.T) {
	recipes := []model.Recipe{{ID: 0, Slots: [model.SlotCount]model.Ingredient{0, 0, 1}}}

	report, err := Audit(context.Background(), recipes, AuditOptions{MaxCount: 5, Limit: 6, MaxExamples: 1})
	require.NoError(t, err)

	// Inventories visited: ire = 0..5, everything else zero. Only ire=5
	// with no guilt fools the range check (5 >= 2 + 3).
	assert.Equal(t, 6, report.Inventories)
	assert.Equal(t, 1, report.PrefixMismatches)
	assert.Equal(t, 0, report.ExactMismatches)
	assert.True(t, report.OK())
	require.Len(t, report.Examples, 1)

	m := report.Examples[0]
	assert.Equal(t, model.Inventory{5}, m.Inventory)
	assert.True(t, m.Prefix)
	assert.False(t, m.Naive)
	assert.False(t, m.Exact)
	assert.Contains(t, m.String(), "prefix=true naive=false")
}

func TestAudit_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Audit(ctx, fullCatalog(), AuditOptions{MaxCount: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAudit_NegativeMaxCount(t *testing.T) {
	_, err := Audit(context.Background(), nil, AuditOptions{MaxCount: -1})
	assert.Error(t, err)
}
