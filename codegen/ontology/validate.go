package ontology

import (
	"github.com/teranos/ontogen/codegen/casing"
	"github.com/teranos/ontogen/errors"
)

// Validate checks the ontology is internally consistent and builds its name
// index. The first problem found is returned, wrapping ErrInvalidOntology.
func (o *Ontology) Validate() error {
	if o.Version != CurrentVersion {
		return errors.WithHintf(
			errors.NewInvalidOntologyError("unsupported format version %q", o.Version),
			"this build reads version %q", CurrentVersion)
	}
	if o.FirstID < 0 {
		return errors.NewInvalidOntologyError("first_id must be >= 0, got %d", o.FirstID)
	}

	seen := make(map[string]bool, len(o.Concepts))
	for i, c := range o.Concepts {
		if c == nil || c.Name == "" {
			return errors.NewInvalidOntologyError("concept #%d has no name", i+1)
		}
		if seen[c.Name] {
			return errors.NewInvalidOntologyError("concept %q defined twice", c.Name)
		}
		seen[c.Name] = true

		if casing.Camel(c.Name) != c.Name {
			return errors.WithHintf(
				errors.NewInvalidOntologyError("concept name %q is not CamelCase", c.Name),
				"try %q", casing.Camel(c.Name))
		}
	}
	o.index()

	for _, c := range o.Concepts {
		if err := o.validateConcept(c); err != nil {
			return err
		}
	}
	for _, c := range o.Concepts {
		if _, err := o.Ancestors(c.Name); err != nil {
			return err
		}
	}
	return nil
}

func (o *Ontology) validateConcept(c *Concept) error {
	if c.Parent != "" {
		if _, err := o.Lookup(c.Parent); err != nil {
			return errors.WithHint(
				errors.NewInvalidOntologyError("concept %q has unknown parent %q", c.Name, c.Parent),
				"declare the parent concept, marking it external if it already exists in the crate")
		}
	}

	if c.External {
		if c.Import == "" {
			return errors.NewInvalidOntologyError("external concept %q needs an import path", c.Name)
		}
		return nil
	}
	if c.Parent == "" {
		return errors.NewInvalidOntologyError("concept %q has no parent", c.Name)
	}

	switch c.EffectiveKind() {
	case KindArchetype:
	case KindAttribute:
		for _, f := range [...]struct{ field, ref string }{{"owner", c.Owner}, {"value", c.Value}} {
			field, ref := f.field, f.ref
			if ref == "" {
				return errors.NewInvalidOntologyError("attribute %q needs %s", c.Name, field)
			}
			if _, err := o.Lookup(ref); err != nil {
				return errors.NewInvalidOntologyError("attribute %q has unknown %s %q", c.Name, field, ref)
			}
		}
	case KindData:
		if c.Primitive == "" {
			return errors.NewInvalidOntologyError("data concept %q needs a primitive", c.Name)
		}
	default:
		return errors.WithHint(
			errors.NewInvalidOntologyError("concept %q has unknown kind %q", c.Name, c.Kind),
			"kind must be archetype, attribute or data")
	}
	return nil
}
