package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Render defaults
	v.SetDefault("render.line_width", 80)
	v.SetDefault("render.doc_width", 80)

	// Output defaults
	v.SetDefault("output.dir", "src")
	v.SetDefault("output.header", true)
	v.SetDefault("output.source_version", true)

	// Package defaults
	v.SetDefault("package.name", "")
	v.SetDefault("package.alias", "")

	// Generate defaults
	v.SetDefault("generate.workers", 4)
	v.SetDefault("generate.tests", true)
	v.SetDefault("generate.post_hook", "")

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 300)
}

// Default returns a Config populated only from SetDefaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults are static values; failing to decode them is a programming error
		panic(err)
	}
	return cfg
}
