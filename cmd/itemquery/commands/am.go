package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/itemquery/am"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage itemquery configuration",
	Long: `am - Manage itemquery configuration ("I am")

Display and manage itemquery configuration settings.

Configuration sources (in order of precedence):
1. Environment variables (ITEMQUERY_* prefix, DATABASE_URL for catalog.dsn)
2. Project config (am.toml in the working directory or a parent)
3. User config (~/.itemquery/am.toml)
4. System config (/etc/itemquery/config.toml)
5. Default values

Examples:
  itemquery am show                         # Show current configuration
  itemquery am show --format json           # Show configuration in JSON format
  itemquery am show --sources               # Show where each setting comes from
  itemquery am get catalog.source           # Get specific config value
  itemquery am set catalog.source sqlite    # Persist a value in the user config
  itemquery am validate                     # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current itemquery configuration from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., catalog.source, parser.suggestion_limit)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Long: `Write a configuration value to the user config (~/.itemquery/am.toml).
The previous file is kept as am.toml.back1, older copies rotate up to .back3.`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current itemquery configuration is valid",
	RunE:  runAmValidate,
}

var (
	configFormat  string
	configSources bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amShowCmd.Flags().BoolVar(&configSources, "sources", false, "Show the source of every setting")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if configSources {
		printSources(cmd.OutOrStdout(), am.GetConfigIntrospection())
		return nil
	}

	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return renderConfig(cmd.OutOrStdout(), cfg, configFormat)
}

func renderConfig(w io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Fprintf(w, "# itemquery configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Fprintf(w, "# itemquery configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", format)
	}

	return nil
}

func printSources(w io.Writer, intro *am.ConfigIntrospection) {
	fmt.Fprintln(w, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(w, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintln(w, "  2. [SYSTEM]   /etc/itemquery/config.toml")
	fmt.Fprintln(w, "  3. [USER]     ~/.itemquery/am.toml")
	fmt.Fprintln(w, "  4. [PROJECT]  am.toml (searches up directories)")
	fmt.Fprintln(w, "  5. [ENV]      ITEMQUERY_* environment variables")
	fmt.Fprintln(w)

	if len(intro.ConfigFiles) == 0 {
		fmt.Fprintln(w, "No config files found")
	} else {
		fmt.Fprintln(w, "Loaded files:")
		for _, path := range intro.ConfigFiles {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
	fmt.Fprintln(w)

	counts := intro.CountBySource()
	fmt.Fprintf(w, "Active configuration (%d settings):\n", len(intro.Settings))
	for _, setting := range intro.Settings {
		valueStr := fmt.Sprintf("%v", setting.Value)
		if len(valueStr) > 50 {
			valueStr = valueStr[:47] + "..."
		}
		origin := string(setting.Source)
		if setting.SourcePath != "" && setting.Source != am.SourceDefault {
			origin += " " + setting.SourcePath
		}
		fmt.Fprintf(w, "  %-24s = %-20s [%s]\n", setting.Key, valueStr, origin)
	}

	fmt.Fprintln(w)
	for _, source := range []am.ConfigSource{am.SourceDefault, am.SourceSystem, am.SourceUser, am.SourceProject, am.SourceEnvironment} {
		if counts[source] > 0 {
			fmt.Fprintf(w, "%s: %d\n", source, counts[source])
		}
	}
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func runAmSet(cmd *cobra.Command, args []string) error {
	path := am.UserConfigPath()
	if err := am.SetValue(path, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: configuration is now invalid: %v\n", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s (%s)\n", args[0], args[1], path)
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}
