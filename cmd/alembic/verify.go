package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/alembic/internal/cli"
	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/engine"
	"github.com/spf13/cobra"
)

// maxAuditCount keeps (max+1)^10 within int range.
const maxAuditCount = 20

func verifyCmd() *cobra.Command {
	var (
		maxCount int
		limit    int
		examples int
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare the prefix range check with the per-unit check",
		Long: `Sweep every inventory whose counts lie in [0, --max-count] and compare the
prefix range check against counting units per kind, for every recipe.

The auto strategy only trusts the range check where it is exact, so a
mismatch on an exact inventory is always an error. With --strict any
disagreement of the raw range check fails the command.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxCount < 0 || maxCount > maxAuditCount {
				return common.NewUserError(fmt.Sprintf("--max-count must be between 0 and %d", maxAuditCount), nil)
			}

			recipes, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			opts := engine.AuditOptions{
				MaxCount:    maxCount,
				Limit:       limit,
				MaxExamples: examples,
			}

			progress := cli.NewProgress(cmd.ErrOrStderr(), engine.AuditTotal(opts), "Auditing inventories...")
			opts.OnProgress = progress.Update

			report, err := engine.Audit(cmd.Context(), recipes, opts)
			if err != nil {
				progress.Abort()
				return fmt.Errorf("audit failed: %w", err)
			}
			progress.Finish()

			common.LogInfo("Audit complete", common.Fields{
				"inventories":       report.Inventories,
				"checks":            report.Checks,
				"prefix_mismatches": report.PrefixMismatches,
				"exact_mismatches":  report.ExactMismatches,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.RenderBox("Audit Report", formatReport(report, len(recipes))))

			if !report.OK() {
				return fmt.Errorf("range check disagreed on %d checks of exact inventories", report.ExactMismatches)
			}
			if strict && report.PrefixMismatches > 0 {
				return fmt.Errorf("range check disagreed on %d checks", report.PrefixMismatches)
			}

			fmt.Fprintln(out, cli.FormatSuccess("Auto strategy matches the per-unit check on every inventory"))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxCount, "max-count", 2, "highest count per ingredient to sweep")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many inventories (0 for all)")
	cmd.Flags().IntVar(&examples, "examples", 5, "mismatches to show")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on any range check disagreement")

	return cmd
}

func formatReport(report engine.AuditReport, recipes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  • Recipes: %d\n", recipes)
	fmt.Fprintf(&b, "  • Inventories: %d (%d exact)\n", report.Inventories, report.ExactInventories)
	fmt.Fprintf(&b, "  • Checks: %d\n", report.Checks)
	fmt.Fprintf(&b, "  • Range check mismatches: %d\n", report.PrefixMismatches)
	fmt.Fprintf(&b, "  • Mismatches on exact inventories: %d", report.ExactMismatches)

	for _, m := range report.Examples {
		fmt.Fprintf(&b, "\n    %s", m.String())
	}
	return b.String()
}
