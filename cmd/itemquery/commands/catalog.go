package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/itemquery/am"
	"github.com/teranos/itemquery/display"
	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/translation"
)

// CatalogCmd represents the catalog command
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the translation catalog",
	Long: `Manage the catalog that search patterns are matched against.

The catalog maps categories and keys (material minecraft:diamond_sword) to
labels (Diamond Sword). It is read from catalog.source: the built-in
default, a TOML file, a SQLite database or a shared PostgreSQL database.

Examples:
  itemquery catalog import items.toml      # Store a TOML catalog in SQLite
  itemquery catalog list --category enchantment
  itemquery catalog export > items.toml    # Write the active catalog as TOML
  itemquery catalog search dia-?           # Raw registry lookup`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.toml>",
	Short: "Import a TOML catalog into the SQLite database",
	Long:  "Validate a TOML catalog and replace the catalog stored at catalog.database_path",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	RunE:  runCatalogList,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as TOML",
	RunE:  runCatalogExport,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Show every entry a search pattern matches",
	Long: `Show the raw registry result for a search pattern, in catalog order,
including the wildcard signal. The parser picks the entry with the
shortest label.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogSearch,
}

var (
	catalogDatabase string
	catalogCategory string
	catalogOutput   string
)

func init() {
	catalogImportCmd.Flags().StringVar(&catalogDatabase, "db", "", "SQLite database (default: catalog.database_path)")
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "Only list entries of this category")
	catalogExportCmd.Flags().StringVarP(&catalogOutput, "output", "o", "", "Write to file instead of stdout")

	CatalogCmd.AddCommand(catalogImportCmd)
	CatalogCmd.AddCommand(catalogListCmd)
	CatalogCmd.AddCommand(catalogExportCmd)
	CatalogCmd.AddCommand(catalogSearchCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	catalog, err := translation.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	database, err := openDatabase(cfg, catalogDatabase)
	if err != nil {
		return err
	}
	defer database.Close()

	store := translation.NewSQLiteStore(database, nil)
	if err := store.Import(cmd.Context(), catalog); err != nil {
		return errors.Wrap(err, "failed to import catalog")
	}

	dbPath := catalogDatabase
	if dbPath == "" {
		dbPath = cfg.GetCatalogDatabasePath()
	}
	pterm.Success.Printfln("Imported %d entries (%s) into %s", len(catalog.Entries), catalog.Locale, dbPath)
	if cfg.GetCatalogSource() != am.CatalogSourceSQLite {
		pterm.Info.Println("Set catalog.source = \"sqlite\" to query this catalog")
	}
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	catalog, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if catalogCategory != "" {
		category := translation.Category(catalogCategory)
		if !category.IsKnown() {
			pterm.Warning.Printfln("%q is not a category predicates are built for", catalogCategory)
		}
		catalog = catalog.Filter(category)
	}

	return printCatalog(cmd.OutOrStdout(), catalog)
}

func printCatalog(w io.Writer, catalog *translation.Catalog) error {
	if len(catalog.Entries) == 0 {
		fmt.Fprintln(w, "No entries")
		return nil
	}

	data := pterm.TableData{{"Category", "Key", "Label", "Search form"}}
	for _, entry := range catalog.Entries {
		data = append(data, []string{string(entry.Category), entry.Key, entry.Label, translation.Normalize(entry.Label)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render catalog")
	}
	fmt.Fprintln(w, table)

	counts := catalog.CountByCategory()
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	fmt.Fprintf(w, "\n%d entries (locale %s):", len(catalog.Entries), catalog.Locale)
	for _, category := range categories {
		fmt.Fprintf(w, " %s=%d", category, counts[translation.Category(category)])
	}
	fmt.Fprintln(w)
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	catalog, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if catalogOutput == "" {
		return translation.ExportCatalog(cmd.OutOrStdout(), catalog)
	}

	f, err := os.Create(catalogOutput)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", catalogOutput)
	}
	if err := translation.ExportCatalog(f, catalog); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to write %s", catalogOutput)
	}

	pterm.Success.Printfln("Exported %d entries to %s", len(catalog.Entries), catalogOutput)
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	registry, err := openRegistry(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), newSearchView(registry, args[0], cfg.Parser.SuggestionLimit))
	}
	return printSearch(cmd.OutOrStdout(), registry, args[0], cfg.Parser.SuggestionLimit)
}

type searchView struct {
	Pattern     string              `json:"pattern"`
	Normalized  string              `json:"normalized"`
	Wildcard    string              `json:"wildcard"`
	Matches     []translation.Entry `json:"matches"`
	Suggestions []string            `json:"suggestions,omitempty"`
}

func newSearchView(registry *translation.Registry, pattern string, suggestionLimit int) searchView {
	result := registry.Search(pattern)
	view := searchView{
		Pattern:    pattern,
		Normalized: translation.Normalize(pattern),
		Wildcard:   result.Wildcard.String(),
		Matches:    make([]translation.Entry, 0, len(result.Matches)),
	}
	for _, match := range result.Matches {
		view.Matches = append(view.Matches, translation.Entry{Category: match.Category, Key: match.Key, Label: match.Translation})
	}
	if len(view.Matches) == 0 {
		view.Suggestions = registry.Suggest(pattern, suggestionLimit)
	}
	return view
}

func printSearch(w io.Writer, registry *translation.Registry, pattern string, suggestionLimit int) error {
	result := registry.Search(pattern)

	fmt.Fprintf(w, "Pattern: %s (normalized %s)\n", pattern, translation.Normalize(pattern))
	fmt.Fprintf(w, "Wildcard: %s\n", result.Wildcard)

	if len(result.Matches) == 0 {
		fmt.Fprintln(w, "No matches")
		if suggestions := registry.Suggest(pattern, suggestionLimit); len(suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %v\n", suggestions)
		}
		return nil
	}

	data := pterm.TableData{{"#", "Category", "Key", "Label"}}
	for i, match := range result.Matches {
		data = append(data, []string{strconv.Itoa(i + 1), string(match.Category), match.Key, match.NormalizedTranslation})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render matches")
	}
	fmt.Fprintln(w, table)
	return nil
}
