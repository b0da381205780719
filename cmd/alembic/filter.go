package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/alembic/internal/cli"
	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/filter"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/spf13/cobra"
)

// recipeJSON is the JSON-lines form of a visible recipe.
type recipeJSON struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Slots       []int    `json:"slots"`
	ID          int      `json:"id"`
}

func filterCmd() *cobra.Command {
	var (
		have    string
		search  string
		reverse bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the recipes craftable from an inventory",
		Long: `Run one filter pass and print the visible recipes.

With no --have every recipe passes the inventory check; --search keeps
recipes whose title or description contains the text, ignoring case.`,
		Example: `  alembic filter --have ire=2,guilt=1
  alembic filter --have 2,1,0,0,0,0,0,0,0,0 --search draught --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var inv model.Inventory
			if have != "" {
				parsed, err := model.ParseInventory(have)
				if err != nil {
					return common.NewUserError("invalid --have value", err)
				}
				inv = parsed
			}

			recipes, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			eng, err := newEngine(recipes)
			if err != nil {
				return err
			}

			ctrl := filter.New(eng)
			ctrl.SetInventory(inv)
			ctrl.SetSearch(search)
			if reverse {
				ctrl.ToggleSort()
			}

			out := cmd.OutOrStdout()
			visible := ctrl.Visible()

			if asJSON {
				return writeJSONLines(out, visible)
			}

			if len(visible) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No recipes match the inventory and search."))
				return nil
			}

			if err := cli.WriteRecipes(out, visible); err != nil {
				return fmt.Errorf("failed to write recipes: %w", err)
			}
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%d of %d recipes visible", ctrl.VisibleCount(), ctrl.Total())))
			return nil
		},
	}

	cmd.Flags().StringVar(&have, "have", "", "inventory as name=count pairs or ten comma-separated counts")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text to find in titles and descriptions")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "print in reverse catalog order")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per line")

	return cmd
}

func writeJSONLines(w io.Writer, recipes []model.Recipe) error {
	enc := json.NewEncoder(w)
	for _, r := range recipes {
		slots := make([]int, len(r.Slots))
		for i, s := range r.Slots {
			slots[i] = int(s)
		}
		if err := enc.Encode(recipeJSON{
			ID:          r.ID,
			Key:         r.Key(),
			Title:       r.Title,
			Description: r.Description,
			Ingredients: r.IngredientNames(),
			Slots:       slots,
		}); err != nil {
			return fmt.Errorf("failed to encode recipe %d: %w", r.ID, err)
		}
	}
	return nil
}
