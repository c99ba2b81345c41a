package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ontogen/codegen"
)

var checkOutput string

// CheckCmd verifies generated sources are up to date
var CheckCmd = &cobra.Command{
	Use:   "check [ontology]",
	Short: "Verify generated sources are up to date",
	Long: `Regenerate in memory and compare against the files in the output directory.

Banner lines recording the ontology's commit are ignored, so the check only
fails on real changes. Exits non-zero when files are missing or differ.

Examples:
  ontogen check                # Compare against output.dir
  ontogen check -o src         # Compare against another directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Directory to compare against (default: output.dir)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if checkOutput != "" {
		cfg.Output.Dir = checkOutput
	}

	path := ontologyPath(args)
	o, err := loadOntology(path)
	if err != nil {
		return err
	}
	files, err := render(cmd.Context(), cfg, o, path)
	if err != nil {
		return err
	}

	result, err := codegen.CompareDirectories(files, cfg.Output.Dir)
	if err != nil {
		return err
	}
	if result.UpToDate {
		pterm.Success.Printfln("%d generated files are up to date", len(files))
		return nil
	}

	for _, p := range result.Missing {
		pterm.Warning.Printfln("missing: %s", p)
	}
	for _, p := range result.Changed {
		pterm.Warning.Printfln("changed: %s", p)
	}
	return result.Err()
}
