package ontology

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/ontogen/errors"
)

// Format is an ontology file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Newf("unsupported ontology file extension %q", filepath.Ext(path)),
			"use .yaml, .yml or .toml",
		)
	}
}

// Load reads, parses and validates the ontology at path.
func Load(path string) (*Ontology, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ontology %s", path)
	}

	o, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ontology %s", path)
	}
	o.Source = path
	return o, nil
}

// Parse decodes and validates an ontology. Unknown keys are rejected so a
// misspelt field does not silently drop a setting.
func Parse(data []byte, format Format) (*Ontology, error) {
	var o Ontology
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidOntology), "failed to parse YAML")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &o)
		if err != nil {
			return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidOntology), "failed to parse TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.NewInvalidOntologyError("unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, errors.AssertionFailedf("unknown ontology format %q", format)
	}

	if o.Version == "" {
		o.Version = CurrentVersion
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}
