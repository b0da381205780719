package main

import (
	"fmt"

	"github.com/Veraticus/alembic/internal/cli"
	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/spf13/cobra"
)

func recipesCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List the recipe catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Recipes (%d)", len(recipes))
			if kind != "" {
				ing, err := model.ParseIngredient(kind)
				if err != nil {
					return common.NewUserError("invalid --kind value", err)
				}
				var using []model.Recipe
				for _, r := range recipes {
					if r.Uses(ing) {
						using = append(using, r)
					}
				}
				recipes = using
				title = fmt.Sprintf("Recipes using %s (%d)", ing.Name(), len(recipes))
			}

			out := cmd.OutOrStdout()
			if len(recipes) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No recipes found."))
				return nil
			}

			fmt.Fprintln(out, cli.FormatTitle(title))
			return cli.WriteRecipes(out, recipes)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only recipes using this ingredient (index or short name)")

	return cmd
}

func ingredientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "List the ingredient kinds and their tier weights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Ingredients"))
			return cli.WriteIngredients(out)
		},
	}
}
