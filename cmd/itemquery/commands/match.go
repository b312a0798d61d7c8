package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/itemquery/am"
	"github.com/teranos/itemquery/display"
	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/item"
	"github.com/teranos/itemquery/logger"
	"github.com/teranos/itemquery/query/parser"
	"github.com/teranos/itemquery/query/predicate"
)

var (
	matchInventory string
	matchStdin     bool
)

// MatchCmd represents the match command
var MatchCmd = &cobra.Command{
	Use:   "match [ARGS...]",
	Short: "List inventory items matching a query",
	Long: `Parse a query and list the items of an inventory that satisfy every
predicate. An empty query matches every item.

With --stdin, one query per line is read until EOF. If catalog.watch is
enabled, edits to the catalog file are picked up between queries.
` + queryArgsHelp + `

Examples:
  itemquery match dia-sw sharp 5
  itemquery match --inventory chest.yaml '"excalibur"'
  itemquery match --stdin < queries.txt`,
	RunE: runMatch,
}

func init() {
	MatchCmd.Flags().StringVarP(&matchInventory, "inventory", "i", "", "Inventory YAML file (default: inventory.path)")
	MatchCmd.Flags().BoolVar(&matchStdin, "stdin", false, "Read one query per line from stdin")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	inventoryPath := matchInventory
	if inventoryPath == "" {
		inventoryPath = cfg.GetInventoryPath()
	}
	inventory, err := item.LoadInventory(inventoryPath)
	if err != nil {
		return errors.WithHint(
			errors.Wrap(err, "failed to load inventory"),
			"pass --inventory or set inventory.path",
		)
	}

	registry, err := openRegistry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	live := newLiveRegistry(registry)

	if matchStdin {
		if len(args) > 0 || queryLine != "" {
			return errors.New("--stdin cannot be combined with a query")
		}
		stop, err := watchCatalog(cmd.Context(), cfg, live)
		if err != nil {
			return err
		}
		defer stop()
		return runMatchREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), live, inventory, cfg)
	}

	args, err = queryArgs(args, queryLine, querySplit)
	if err != nil {
		return err
	}

	if err := traceQuery(cmd.ErrOrStderr(), verbosity(cmd), args, registry); err != nil {
		return err
	}

	query, err := parseQuery(cmd.Context(), args, live)
	if err != nil {
		return queryFailure(err, args, registry, cfg.Parser.SuggestionLimit)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), newMatchView(inventory, query))
	}
	return printMatches(cmd.OutOrStdout(), inventory, query)
}

type matchView struct {
	Query     string      `json:"query"`
	Inventory string      `json:"inventory"`
	Total     int         `json:"total"`
	Matched   []item.Item `json:"matched"`
}

func newMatchView(inventory *item.Inventory, query predicate.Conjunction) matchView {
	matched := query.Filter(inventory.Items)
	if matched == nil {
		matched = []item.Item{}
	}
	return matchView{
		Query:     query.Stringify(false),
		Inventory: inventory.Name,
		Total:     len(inventory.Items),
		Matched:   matched,
	}
}

// runMatchREPL answers one query per input line. Parse errors are reported
// inline and do not end the session.
func runMatchREPL(ctx context.Context, in io.Reader, out io.Writer, live *liveRegistry, inventory *item.Inventory, cfg *am.Config) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0

	for scanner.Scan() {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		lineNumber++
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := splitLine(line, querySplit)
		if err != nil {
			PrintError(out, parser.ErrorContextPlain, err)
			continue
		}

		fmt.Fprintf(out, "> %s\n", line)

		query, err := parseQuery(ctx, args, live)
		if err != nil {
			PrintError(out, parser.ErrorContextPlain, queryFailure(err, args, live.current(), cfg.Parser.SuggestionLimit))
			continue
		}

		if err := printMatches(out, inventory, query); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read query line %d", lineNumber+1)
	}
	return nil
}

// watchCatalog hot-reloads the catalog file while the REPL runs.
// Returns a stop function; it is a no-op when watching is disabled.
func watchCatalog(ctx context.Context, cfg *am.Config, live *liveRegistry) (func(), error) {
	if !cfg.Catalog.Watch {
		return func() {}, nil
	}
	if cfg.GetCatalogSource() != am.CatalogSourceFile {
		return nil, errors.WithHint(
			errors.New("catalog.watch requires catalog.source = \"file\""),
			"disable catalog.watch or switch to a catalog file",
		)
	}

	paths := append([]string{cfg.Catalog.Path}, am.LoadedFiles()...)
	watcher, err := am.NewConfigWatcher(paths...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch catalog")
	}

	watcher.OnReload(func(newConfig *am.Config) error {
		registry, err := openRegistry(ctx, newConfig)
		if err != nil {
			// Keep serving the previous catalog
			return errors.Wrap(err, "catalog reload rejected")
		}
		live.swap(registry)
		logger.Infow("Catalog swapped",
			logger.FieldFile, newConfig.Catalog.Path,
			logger.FieldCount, registry.Len())
		return nil
	})

	am.SetGlobalWatcher(watcher)
	watcher.Start()

	return func() {
		am.SetGlobalWatcher(nil)
		if err := watcher.Stop(); err != nil {
			logger.Warnw("Failed to stop catalog watcher", logger.FieldError, err)
		}
	}, nil
}

func printMatches(w io.Writer, inventory *item.Inventory, query predicate.Conjunction) error {
	matched := query.Filter(inventory.Items)

	name := inventory.Name
	if name == "" {
		name = "inventory"
	}
	fmt.Fprintf(w, "%d of %d items in %s match\n", len(matched), len(inventory.Items), name)
	if len(matched) == 0 {
		return nil
	}

	data := pterm.TableData{{"Material", "Amount", "Name", "Details"}}
	for i := range matched {
		it := &matched[i]
		data = append(data, []string{it.Material, strconv.Itoa(it.Amount), it.DisplayName, itemDetails(it)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render matches")
	}
	fmt.Fprintln(w, table)
	return nil
}

// itemDetails summarizes the properties predicates can test
func itemDetails(it *item.Item) string {
	var parts []string

	keys := make([]string, 0, len(it.Enchantments))
	for key := range it.Enchantments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", key, it.Enchantments[key]))
	}

	for _, effect := range it.PotionEffects {
		parts = append(parts, fmt.Sprintf("%s %d %ds", effect.Type, effect.Amplifier, effect.DurationSeconds))
	}
	if percent, ok := it.DeteriorationPercent(); ok {
		parts = append(parts, fmt.Sprintf("%d%% worn", percent))
	}
	if it.Instrument != "" {
		parts = append(parts, it.Instrument)
	}

	return strings.Join(parts, ", ")
}
