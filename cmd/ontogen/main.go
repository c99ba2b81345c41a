package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/ontogen/cmd/ontogen/commands"
	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ontogen",
	Short: "ontogen - Rust code generation from an ontology",
	Long: `ontogen - Rust code generation from an ontology.

ontogen reads an ontology of concepts (YAML or TOML) and generates one Rust
source file per concept, plus the mod.rs files that tie the modules together.

Available commands:
  generate - Generate Rust sources from an ontology
  check    - Verify generated sources are up to date
  watch    - Regenerate whenever the ontology changes
  am       - Manage ontogen configuration ("I am")
  version  - Show version information

Examples:
  ontogen generate ontology.yaml        # Write sources under output.dir
  ontogen check ontology.yaml           # Fail if sources are stale (CI)
  ontogen watch ontology.yaml -v        # Regenerate on every save`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 'am show' prints config to stdout, keep it clean
		if cmd.Name() == "show" {
			return nil
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&commands.ConfigFile, "config", "", "Config file (default: ontogen.toml searched upward)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
