package main

import (
	"fmt"

	"github.com/Veraticus/alembic/internal/common"
	"github.com/Veraticus/alembic/internal/config"
	"github.com/Veraticus/alembic/internal/model"
	"github.com/Veraticus/alembic/internal/tui"
	"github.com/Veraticus/alembic/internal/tui/themes"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	var (
		have  string
		theme string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse craftable recipes interactively",
		Long: `Open the interactive browser. Adjust ingredient counts on the left and the
recipe list on the right updates as you type. Press ? for all keys.

Logs are written to stderr unless --log-file is set; set it to keep them from
drawing over the screen.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var inv model.Inventory
			if have != "" {
				parsed, err := model.ParseInventory(have)
				if err != nil {
					return common.NewUserError("invalid --have value", err)
				}
				inv = parsed
			}

			source, err := openCatalog()
			if err != nil {
				return err
			}

			strategy, err := config.LoadEngineStrategy()
			if err != nil {
				return err
			}

			if err := tui.Run(cmd.Context(),
				tui.WithSource(source),
				tui.WithStrategy(strategy),
				tui.WithInventory(inv),
				tui.WithTheme(themes.GetTheme(theme)),
			); err != nil {
				return fmt.Errorf("browser exited: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&have, "have", "", "starting inventory (e.g. ire=2,guilt=1 or ten counts)")
	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin-mocha)")

	return cmd
}
