package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_Signature(t *testing.T) {
	var inv Inventory
	assert.Equal(t, "0,0,0,0,0,0,0,0,0,0", inv.Signature())
	assert.True(t, inv.IsEmpty())

	require.NoError(t, inv.Set(DilutedIre, 2))
	require.NoError(t, inv.Set(DilutedGuilt, 1))
	assert.Equal(t, "2,1,0,0,0,0,0,0,0,0", inv.Signature())
	assert.False(t, inv.IsEmpty())
	assert.Equal(t, 3, inv.Total())
	assert.Equal(t, 2, inv.Count(DilutedIre))
}

func TestInventory_Set(t *testing.T) {
	var inv Inventory

	err := inv.Set(Envy, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	err = inv.Set(ConcentratedIsolation, MaxCount+1)
	assert.ErrorIs(t, err, ErrCountTooLarge)

	require.NoError(t, inv.Set(ConcentratedIsolation, MaxCount))
	assert.True(t, inv.Bounded())
	inv[ConcentratedIsolation] = 0

	err = inv.Set(Ingredient(11), 1)
	assert.ErrorIs(t, err, ErrUnknownIngredient)

	assert.True(t, inv.IsEmpty())
}

func TestInventory_Bounded(t *testing.T) {
	assert.True(t, Inventory{}.Bounded())
	assert.True(t, Inventory{9: MaxCount}.Bounded())
	assert.False(t, Inventory{9: MaxCount + 1}.Bounded())
	assert.False(t, Inventory{0: -1}.Bounded())
}

func TestParseInventory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		want    Inventory
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  Inventory{},
		},
		{
			name:  "positional counts",
			input: "2,1,0,0,0,0,0,0,0,3",
			want:  Inventory{2, 1, 0, 0, 0, 0, 0, 0, 0, 3},
		},
		{
			name:  "named pairs",
			input: "ire=2, guilt=1,9=4",
			want:  Inventory{2, 1, 0, 0, 0, 0, 0, 0, 0, 4},
		},
		{
			name:    "wrong number of positional counts",
			input:   "1,2,3",
			wantErr: true,
			errMsg:  "expected 10 counts",
		},
		{
			name:    "negative count",
			input:   "ire=-2",
			wantErr: true,
			errMsg:  "cannot be negative",
		},
		{
			name:    "count overflowing the weighted sum",
			input:   "isolation=500000000000000000",
			wantErr: true,
			errMsg:  "too large",
		},
		{
			name:    "unknown kind",
			input:   "joy=1",
			wantErr: true,
			errMsg:  "unknown ingredient",
		},
		{
			name:    "missing equals in pair list",
			input:   "ire=1,guilt",
			wantErr: true,
			errMsg:  "expected name=count",
		},
		{
			name:    "non numeric count",
			input:   "a,0,0,0,0,0,0,0,0,0",
			wantErr: true,
			errMsg:  "invalid count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInventory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
