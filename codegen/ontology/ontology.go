// Package ontology holds the concept graph generated code is derived from:
// the model, its YAML/TOML loaders, validation, version constraints, the
// resolver mapping concepts onto Rust files and modules, and a watcher that
// reloads the ontology when its file changes.
package ontology

import (
	"sort"

	"github.com/teranos/ontogen/errors"
)

// Kind classifies what a concept generates.
type Kind string

const (
	// KindArchetype is a plain node type.
	KindArchetype Kind = "archetype"
	// KindAttribute is a relation from an owner type to a value type.
	KindAttribute Kind = "attribute"
	// KindData wraps a primitive Rust value.
	KindData Kind = "data"
)

// CurrentVersion is the ontology file format this build reads.
const CurrentVersion = "1"

// Concept is one node of the ontology. It is the configuration object each
// generated declaration is built from.
type Concept struct {
	Name   string `yaml:"name" toml:"name"`
	Parent string `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Doc    string `yaml:"doc,omitempty" toml:"doc,omitempty"`

	// Module places the concept explicitly, e.g. "tao::relation".
	Module string `yaml:"module,omitempty" toml:"module,omitempty"`
	// OwnModule gives the concept a directory with a mod.rs of its own;
	// children without an explicit module are placed inside it.
	OwnModule bool `yaml:"own_module,omitempty" toml:"own_module,omitempty"`

	// External concepts already exist in the target crate. They are
	// referenced but never generated.
	External bool   `yaml:"external,omitempty" toml:"external,omitempty"`
	Import   string `yaml:"import,omitempty" toml:"import,omitempty"`

	Kind Kind `yaml:"kind,omitempty" toml:"kind,omitempty"`

	// Attribute concepts
	Owner string `yaml:"owner,omitempty" toml:"owner,omitempty"`
	Value string `yaml:"value,omitempty" toml:"value,omitempty"`

	// Data concepts
	Primitive string `yaml:"primitive,omitempty" toml:"primitive,omitempty"`
	Default   string `yaml:"default,omitempty" toml:"default,omitempty"`
}

// EffectiveKind returns Kind, defaulting to KindArchetype.
func (c *Concept) EffectiveKind() Kind {
	if c.Kind == "" {
		return KindArchetype
	}
	return c.Kind
}

// Ontology is a loaded, validated concept graph.
type Ontology struct {
	Version  string `yaml:"version" toml:"version"`
	Requires string `yaml:"requires,omitempty" toml:"requires,omitempty"`

	// Package is the alias generated imports use in place of "crate".
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`

	// FirstID is the type ID given to the first generated concept.
	FirstID int `yaml:"first_id,omitempty" toml:"first_id,omitempty"`

	Concepts []*Concept `yaml:"concepts" toml:"concepts"`

	// Source is the file the ontology was loaded from, if any.
	Source string `yaml:"-" toml:"-"`

	byName map[string]*Concept
}

func (o *Ontology) index() {
	o.byName = make(map[string]*Concept, len(o.Concepts))
	for _, c := range o.Concepts {
		o.byName[c.Name] = c
	}
}

// Lookup returns the concept called name.
func (o *Ontology) Lookup(name string) (*Concept, error) {
	if o.byName == nil {
		o.index()
	}
	c, ok := o.byName[name]
	if !ok {
		return nil, errors.NewUnknownConceptError(name)
	}
	return c, nil
}

// MustLookup is Lookup for names already known to be valid.
func (o *Ontology) MustLookup(name string) *Concept {
	c, err := o.Lookup(name)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "lookup after validation"))
	}
	return c
}

// ParentOf returns the parent of c, or nil for a root concept.
func (o *Ontology) ParentOf(c *Concept) *Concept {
	if c.Parent == "" {
		return nil
	}
	p, err := o.Lookup(c.Parent)
	if err != nil {
		return nil
	}
	return p
}

// Ancestors returns the parent chain of name, nearest first.
func (o *Ontology) Ancestors(name string) ([]*Concept, error) {
	c, err := o.Lookup(name)
	if err != nil {
		return nil, err
	}

	var chain []*Concept
	seen := map[string]bool{c.Name: true}
	for p := o.ParentOf(c); p != nil; p = o.ParentOf(p) {
		if seen[p.Name] {
			return nil, errors.NewInvalidOntologyError("inheritance cycle through %q", p.Name)
		}
		seen[p.Name] = true
		chain = append(chain, p)
	}
	return chain, nil
}

// Children returns the direct children of name, sorted by name.
func (o *Ontology) Children(name string) []*Concept {
	var out []*Concept
	for _, c := range o.Concepts {
		if c.Parent == name {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Generated returns the concepts code is generated for, in file order.
func (o *Ontology) Generated() []*Concept {
	var out []*Concept
	for _, c := range o.Concepts {
		if !c.External {
			out = append(out, c)
		}
	}
	return out
}
