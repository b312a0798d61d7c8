package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/itemquery/am"
	"github.com/teranos/itemquery/cmd/itemquery/commands"
	"github.com/teranos/itemquery/logger"
)

var rootCmd = &cobra.Command{
	Use:   "itemquery",
	Short: "itemquery - Parse and run item search queries",
	Long: `itemquery - Parse item search queries the way a game command receives them.

A query is a whitespace-split argument array: search patterns resolved
against a translation catalog, trailing integer arguments, and quoted
phrases searched in item names, lore and book pages.

Available commands:
  tokens   - Show the token stream of a query
  parse    - Parse a query into item predicates
  match    - List inventory items matching a query
  catalog  - Manage the translation catalog
  am       - Manage itemquery configuration ("I am")
  version  - Show version information

Examples:
  itemquery parse dia-sw sharp 5          # Diamond sword with Sharpness V
  itemquery match speed 1 1:30            # Speed II potions lasting 90 seconds
  itemquery match '"ancient' 'sword"'     # Text search across two arguments
  itemquery am show                       # Show current configuration`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")

		// Config errors surface in the command itself; logging falls back to defaults
		cfg, err := am.Load()
		if err == nil {
			jsonLog = jsonLog || cfg.Log.JSON
			logger.SetTheme(cfg.GetLogTheme())
		}
		if logger.Theme() == logger.ThemeNone {
			pterm.DisableColor()
		}

		if err := logger.Initialize(jsonLog, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON to stderr")

	rootCmd.AddCommand(commands.TokensCmd)
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.MatchCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		commands.ReportError(err)
		stop()
		os.Exit(1)
	}
}
