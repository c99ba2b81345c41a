package ontology

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/version"
)

// CheckCompatible verifies that the running build satisfies the ontology's
// requires constraint. Development builds and ontologies without a
// constraint always pass.
func CheckCompatible(o *Ontology, info version.Info) error {
	if o.Requires == "" || !info.IsRelease() {
		return nil
	}

	current, err := semver.NewVersion(info.Version)
	if err != nil {
		return errors.Wrapf(err, "invalid ontogen version %s", info.Version)
	}

	constraint, err := semver.NewConstraint(o.Requires)
	if err != nil {
		return errors.Wrap(
			errors.Mark(err, errors.ErrInvalidOntology),
			"invalid requires constraint "+o.Requires)
	}

	if !constraint.Check(current) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrIncompatibleVersion, "ontology requires ontogen %s, but running %s", o.Requires, info.Version),
			"upgrade ontogen or relax the requires constraint")
	}
	return nil
}
