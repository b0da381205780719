// Package model defines the core domain types shared across alembic.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// KindCount is the number of ingredient kinds a recipe can draw from.
const KindCount = 10

// ErrUnknownIngredient is returned when an ingredient reference cannot be resolved.
var ErrUnknownIngredient = errors.New("unknown ingredient")

// Ingredient identifies one of the ten ingredient kinds by its tier index.
type Ingredient int

// Ingredient kinds, ordered by tier.
const (
	DilutedIre Ingredient = iota
	DilutedGuilt
	DilutedGreed
	Paranoia
	Envy
	Disgust
	Despair
	ConcentratedFear
	ConcentratedSuffering
	ConcentratedIsolation
)

// tierWeights holds 3^i for every kind. A recipe's demand is encoded as a
// base-3 sum of these weights, so the sequence must not change.
var tierWeights = [KindCount]int{1, 3, 9, 27, 81, 243, 729, 2187, 6561, 19683}

var ingredientNames = [KindCount]string{
	"Diluted Liquid Ire",
	"Diluted Liquid Guilt",
	"Diluted Liquid Greed",
	"Liquid Paranoia",
	"Liquid Envy",
	"Liquid Disgust",
	"Liquid Despair",
	"Concentrated Liquid Fear",
	"Concentrated Liquid Suffering",
	"Concentrated Liquid Isolation",
}

var shortNames = [KindCount]string{
	"ire",
	"guilt",
	"greed",
	"paranoia",
	"envy",
	"disgust",
	"despair",
	"fear",
	"suffering",
	"isolation",
}

// AllIngredients returns every ingredient kind in tier order.
func AllIngredients() []Ingredient {
	all := make([]Ingredient, KindCount)
	for i := range all {
		all[i] = Ingredient(i)
	}
	return all
}

// Valid reports whether the ingredient is one of the known kinds.
func (i Ingredient) Valid() bool {
	return i >= 0 && i < KindCount
}

// Weight returns the tier weight of the ingredient.
func (i Ingredient) Weight() int {
	return tierWeights[i]
}

// Name returns the display name, e.g. "Liquid Paranoia".
func (i Ingredient) Name() string {
	if !i.Valid() {
		return fmt.Sprintf("Ingredient(%d)", int(i))
	}
	return ingredientNames[i]
}

// ShortName returns the lowercase short name, e.g. "paranoia".
func (i Ingredient) ShortName() string {
	if !i.Valid() {
		return strconv.Itoa(int(i))
	}
	return shortNames[i]
}

// AssetPath returns the relative path of the ingredient's image.
func (i Ingredient) AssetPath() string {
	return "./assets/" + i.ShortName() + ".webp"
}

func (i Ingredient) String() string {
	return i.ShortName()
}

// TierWeight returns the tier weight for kind index k.
func TierWeight(k int) int {
	return tierWeights[k]
}

// ParseIngredient resolves a tier index ("3") or a short name ("paranoia").
func ParseIngredient(s string) (Ingredient, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty reference", ErrUnknownIngredient)
	}

	if n, err := strconv.Atoi(s); err == nil {
		ing := Ingredient(n)
		if !ing.Valid() {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d]", ErrUnknownIngredient, n, KindCount-1)
		}
		return ing, nil
	}

	for i, name := range shortNames {
		if name == s {
			return Ingredient(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownIngredient, s)
}
