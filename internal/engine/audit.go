package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/alembic/internal/model"
)

// AuditOptions bounds an audit sweep.
type AuditOptions struct {
	OnProgress  func(done, total int)
	MaxCount    int // per-kind counts range over [0, MaxCount]
	Limit       int // maximum inventories to visit, 0 for all
	MaxExamples int
}

// Mismatch is one inventory/recipe pair where the prefix check disagreed
// with the per-unit check.
type Mismatch struct {
	Inventory model.Inventory
	RecipeID  int
	Prefix    bool
	Naive     bool
	Exact     bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("recipe %d inventory [%s]: prefix=%t naive=%t exact=%t",
		m.RecipeID, m.Inventory.Signature(), m.Prefix, m.Naive, m.Exact)
}

// AuditReport summarizes an audit sweep.
type AuditReport struct {
	Examples         []Mismatch
	Inventories      int
	ExactInventories int
	Checks           int
	PrefixMismatches int
	// ExactMismatches counts prefix mismatches on inventories flagged exact.
	// Anything above zero means the exactness guard is wrong.
	ExactMismatches int
}

// OK reports whether the auto strategy agreed with the per-unit check everywhere.
func (r AuditReport) OK() bool {
	return r.ExactMismatches == 0
}

// AuditTotal returns how many inventories a sweep with opts will visit.
func AuditTotal(opts AuditOptions) int {
	total := 1
	for i := 0; i < model.KindCount; i++ {
		total *= opts.MaxCount + 1
	}
	if opts.Limit > 0 && opts.Limit < total {
		return opts.Limit
	}
	return total
}

// Audit compares the prefix range check against the per-unit check for
// every inventory whose counts lie in [0, opts.MaxCount].
func Audit(ctx context.Context, recipes []model.Recipe, opts AuditOptions) (AuditReport, error) {
	var report AuditReport
	if opts.MaxCount < 0 {
		return report, fmt.Errorf("max count cannot be negative: %d", opts.MaxCount)
	}
	if opts.MaxExamples <= 0 {
		opts.MaxExamples = 10
	}

	demands := make([]Demand, len(recipes))
	for i, r := range recipes {
		demands[i] = BuildDemand(r.Slots)
	}

	total := AuditTotal(opts)
	var inv model.Inventory

	for visited := 0; visited < total; visited++ {
		if visited%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if opts.OnProgress != nil {
				opts.OnProgress(visited, total)
			}
		}

		prefix := ComputePrefix(inv)
		exact := prefix.Exact()
		if exact {
			report.ExactInventories++
		}

		for i, r := range recipes {
			fast := CheckPrefix(prefix, demands[i])
			slow := CheckNaive(inv, r.Slots)
			report.Checks++
			if fast == slow {
				continue
			}

			report.PrefixMismatches++
			if exact {
				report.ExactMismatches++
			}
			if len(report.Examples) < opts.MaxExamples {
				report.Examples = append(report.Examples, Mismatch{
					Inventory: inv,
					RecipeID:  r.ID,
					Prefix:    fast,
					Naive:     slow,
					Exact:     exact,
				})
			}
		}

		report.Inventories++
		nextInventory(&inv, opts.MaxCount)
	}

	if opts.OnProgress != nil {
		opts.OnProgress(total, total)
	}

	slog.Debug("audit complete",
		"inventories", report.Inventories,
		"checks", report.Checks,
		"prefix_mismatches", report.PrefixMismatches,
		"exact_mismatches", report.ExactMismatches)

	return report, nil
}

// nextInventory advances inv like an odometer with digits in [0, maxCount].
func nextInventory(inv *model.Inventory, maxCount int) {
	for k := range inv {
		if inv[k] < maxCount {
			inv[k]++
			return
		}
		inv[k] = 0
	}
}
