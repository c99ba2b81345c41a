package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	generateOutput string
	generateDryRun bool
	generateNoHook bool
)

// GenerateCmd generates Rust sources from an ontology
var GenerateCmd = &cobra.Command{
	Use:   "generate [ontology]",
	Short: "Generate Rust sources from an ontology",
	Long: `Generate one Rust file per concept in the ontology, plus the mod.rs files
declaring each module.

Files whose content is unchanged are not rewritten. When anything changed,
generate.post_hook (e.g. "cargo fmt") runs in the output directory.

Examples:
  ontogen generate                         # Uses ./ontology.yaml
  ontogen generate yin.toml -o src         # Explicit ontology and output dir
  ontogen generate --dry-run               # List the files that would be written`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: output.dir)")
	GenerateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "List generated paths without writing")
	GenerateCmd.Flags().BoolVar(&generateNoHook, "no-hook", false, "Skip generate.post_hook")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateOutput != "" {
		cfg.Output.Dir = generateOutput
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

	if generateDryRun {
		for _, f := range files {
			pterm.Println(f.Path)
		}
		pterm.Info.Printfln("%d files would be generated in %s", len(files), absOrSelf(cfg.Output.Dir))
		return nil
	}

	changed, err := writeOutput(cmd.Context(), cfg, files, !generateNoHook)
	if err != nil {
		return err
	}
	for _, p := range changed {
		pterm.Printfln("  %s", p)
	}
	pterm.Success.Printfln("Generated %d files (%d changed) in %s [%s]",
		len(files), len(changed), absOrSelf(cfg.Output.Dir), time.Since(start).Round(time.Millisecond))
	return nil
}
