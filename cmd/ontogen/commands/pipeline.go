// Package commands implements the ontogen CLI.
package commands

import (
	"context"
	"path/filepath"

	"github.com/teranos/ontogen/am"
	"github.com/teranos/ontogen/codegen"
	"github.com/teranos/ontogen/codegen/ontology"
	"github.com/teranos/ontogen/codegen/rust"
	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
	"github.com/teranos/ontogen/version"
)

// DefaultOntology is used when no ontology path is given.
const DefaultOntology = "ontology.yaml"

// ConfigFile overrides the config search when set (--config).
var ConfigFile string

func loadConfig() (*am.Config, error) {
	var (
		cfg *am.Config
		err error
	)
	if ConfigFile != "" {
		cfg, err = am.LoadFromFile(ConfigFile)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func ontologyPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultOntology
}

// loadOntology loads the ontology and checks it accepts this build.
func loadOntology(path string) (*ontology.Ontology, error) {
	o, err := ontology.Load(path)
	if err != nil {
		return nil, err
	}
	if err := ontology.CheckCompatible(o, version.Get()); err != nil {
		return nil, err
	}
	return o, nil
}

// render generates every file for o. path is the file o was loaded from and
// is only used to look up its last commit.
func render(ctx context.Context, cfg *am.Config, o *ontology.Ontology, path string) ([]codegen.GeneratedFile, error) {
	opts := codegen.OptionsFromConfig(cfg)
	if cfg.Output.Header && cfg.Output.SourceVersion {
		src, err := codegen.SourceVersion(path)
		if err != nil {
			// generation does not depend on git
			logger.Warnw("Could not read ontology source version",
				logger.FieldOntology, path,
				logger.FieldError, err)
		}
		opts.Source = src
	}
	return codegen.Run(ctx, codegen.NewSession(o, opts), rust.NewGenerator())
}

// writeOutput writes files under the output dir and runs the post hook when
// anything changed.
func writeOutput(ctx context.Context, cfg *am.Config, files []codegen.GeneratedFile, runHook bool) ([]string, error) {
	changed, err := codegen.WriteFiles(cfg.Output.Dir, files)
	if err != nil {
		return changed, err
	}
	if runHook && len(changed) > 0 {
		if err := codegen.RunHook(ctx, cfg.Generate.PostHook, cfg.Output.Dir); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

func absOrSelf(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
