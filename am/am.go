// Package am holds ontogen's configuration ("I am"): how fragments are
// rendered, where generated files go and how the pipeline runs.
package am

// Config represents the ontogen configuration
type Config struct {
	Render   RenderConfig   `mapstructure:"render" toml:"render" yaml:"render"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" yaml:"output"`
	Package  PackageConfig  `mapstructure:"package" toml:"package" yaml:"package"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch" yaml:"watch"`
}

// RenderConfig configures the fragment renderer
type RenderConfig struct {
	LineWidth int `mapstructure:"line_width" toml:"line_width" yaml:"line_width"` // Available width for the top-level fragment (default: 80)
	DocWidth  int `mapstructure:"doc_width" toml:"doc_width" yaml:"doc_width"`    // Maximum width of wrapped doc comments (default: 80)
}

// OutputConfig configures where and how generated files are written
type OutputConfig struct {
	Dir           string `mapstructure:"dir" toml:"dir" yaml:"dir"`                                  // Output root (default: "src")
	Header        bool   `mapstructure:"header" toml:"header" yaml:"header"`                         // Prepend the "DO NOT EDIT" banner
	SourceVersion bool   `mapstructure:"source_version" toml:"source_version" yaml:"source_version"` // Record the ontology's last commit in the banner
}

// PackageConfig configures the package the generated code lives in
type PackageConfig struct {
	Name  string `mapstructure:"name" toml:"name" yaml:"name"`    // Name of the package being generated (informational)
	Alias string `mapstructure:"alias" toml:"alias" yaml:"alias"` // Replaces the leading "crate" segment in imports; empty keeps "crate"
}

// GenerateConfig configures the generation pipeline
type GenerateConfig struct {
	Workers  int    `mapstructure:"workers" toml:"workers" yaml:"workers"`       // Files rendered concurrently (default: 4)
	Tests    bool   `mapstructure:"tests" toml:"tests" yaml:"tests"`             // Emit #[cfg(test)] modules (default: true)
	PostHook string `mapstructure:"post_hook" toml:"post_hook" yaml:"post_hook"` // Command run in the output dir after writing, e.g. "cargo fmt"
}

// WatchConfig configures `ontogen watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms"` // Quiet period before regenerating (default: 300)
}

// Minimum line width the renderer accepts; narrower widths make every
// block degrade to one token per line.
const MinLineWidth = 20

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// ConfigFileName is the project config file searched for upward from the working directory
const ConfigFileName = "ontogen.toml"
