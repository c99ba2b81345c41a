package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/ontogen/am"
	"github.com/teranos/ontogen/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage ontogen configuration",
	Long: `am - Manage ontogen configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (ONTOGEN_* prefix)
3. Project config (./ontogen.toml, searched upward)
4. User config (~/.ontogen/ontogen.toml)
5. Default values

Examples:
  ontogen am show                 # Show current configuration
  ontogen am show --format yaml   # Show configuration as YAML
  ontogen am validate             # Validate current configuration
  ontogen am where                # List config files consulted
  ontogen am init                 # Write a default ontogen.toml`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runAmWhere,
}

var amInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default ontogen.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmInit,
}

var (
	configFormat string
	initForce    bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file (a backup is kept)")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
	AmCmd.AddCommand(amInitCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Printf("# ontogen configuration\n%s", string(data))

	case "toml":
		data, err := am.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# ontogen configuration\n%s", string(data))

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	pterm.Println("Configuration cascade (later overrides earlier):")
	pterm.Println("  [DEFAULT]  Built-in defaults")
	for _, path := range am.ConfigPaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "loaded"
		}
		pterm.Printfln("  [FILE]     %s (%s)", path, status)
	}
	pterm.Println("  [ENV]      ONTOGEN_* environment variables")
	if ConfigFile != "" {
		pterm.Printfln("  --config %s replaces the cascade", ConfigFile)
	}
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := am.ConfigFileName
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it")
	}
	if err := am.Save(path, am.Default()); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", absOrSelf(path))
	return nil
}
