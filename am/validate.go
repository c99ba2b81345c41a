package am

import "github.com/teranos/ontogen/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Render.LineWidth < MinLineWidth {
		return errors.WithHintf(
			errors.Newf("render.line_width must be >= %d, got %d", MinLineWidth, c.Render.LineWidth),
			"rustfmt uses 100; ontogen defaults to 80")
	}
	if c.Render.DocWidth < MinLineWidth {
		return errors.Newf("render.doc_width must be >= %d, got %d", MinLineWidth, c.Render.DocWidth)
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}

	// Workers: 0 would never render anything
	if c.Generate.Workers <= 0 {
		return errors.Newf("generate.workers must be > 0, got %d", c.Generate.Workers)
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
