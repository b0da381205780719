package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Inventory count errors.
var (
	ErrNegativeCount = errors.New("inventory count cannot be negative")
	ErrCountTooLarge = errors.New("inventory count too large")
)

// MaxCount is the largest count a single kind may hold. Weighted sums of
// counts up to this bound fit comfortably in an int.
const MaxCount = 1 << 20

// Inventory holds how many units of each ingredient kind are available.
type Inventory [KindCount]int

// IsEmpty reports whether every count is zero.
func (inv Inventory) IsEmpty() bool {
	for _, n := range inv {
		if n > 0 {
			return false
		}
	}
	return true
}

// Signature serializes the counts as a comma-joined string.
func (inv Inventory) Signature() string {
	var b strings.Builder
	for i, n := range inv {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Count returns the number of units held of the given kind.
func (inv Inventory) Count(kind Ingredient) int {
	return inv[kind]
}

// Set assigns the count for a kind.
func (inv *Inventory) Set(kind Ingredient, n int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownIngredient, int(kind))
	}
	if n < 0 {
		return fmt.Errorf("%w: %s=%d", ErrNegativeCount, kind.ShortName(), n)
	}
	if n > MaxCount {
		return fmt.Errorf("%w: %s=%d exceeds %d", ErrCountTooLarge, kind.ShortName(), n, MaxCount)
	}
	inv[kind] = n
	return nil
}

// Bounded reports whether every count lies within 0..MaxCount.
func (inv Inventory) Bounded() bool {
	for _, n := range inv {
		if n < 0 || n > MaxCount {
			return false
		}
	}
	return true
}

// Total returns the number of units across all kinds.
func (inv Inventory) Total() int {
	total := 0
	for _, n := range inv {
		total += n
	}
	return total
}

// ParseInventory parses either ten comma-separated counts ("2,1,0,0,0,0,0,0,0,0")
// or name=count pairs ("ire=2,guilt=1"). Kinds that are not mentioned are zero.
func ParseInventory(s string) (Inventory, error) {
	var inv Inventory

	s = strings.TrimSpace(s)
	if s == "" {
		return inv, nil
	}

	parts := strings.Split(s, ",")
	if !strings.Contains(s, "=") {
		if len(parts) != KindCount {
			return inv, fmt.Errorf("expected %d counts, got %d", KindCount, len(parts))
		}
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return inv, fmt.Errorf("invalid count %q at position %d: %w", part, i, err)
			}
			if err := inv.Set(Ingredient(i), n); err != nil {
				return inv, err
			}
		}
		return inv, nil
	}

	for _, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return inv, fmt.Errorf("invalid pair %q: expected name=count", part)
		}
		kind, err := ParseIngredient(name)
		if err != nil {
			return inv, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return inv, fmt.Errorf("invalid count for %s: %w", kind.ShortName(), err)
		}
		if err := inv.Set(kind, n); err != nil {
			return inv, err
		}
	}

	return inv, nil
}
