package ontology

import (
	"path"
	"sort"
	"strings"

	"github.com/teranos/ontogen/codegen/casing"
	"github.com/teranos/ontogen/codegen/imports"
)

// Resolver maps concepts onto the generated crate layout.
type Resolver interface {
	// FilePath is the slash-separated path of the file defining c,
	// relative to the output directory.
	FilePath(c *Concept) string

	// OwnModule reports whether c is defined in a mod.rs of its own.
	OwnModule(c *Concept) bool

	// ImportPath is the fully-qualified path that brings c into scope.
	ImportPath(c *Concept) string
}

// TreeResolver derives placement from the inheritance tree: a concept lives
// in its explicit module, else inside its parent's module, one level deeper
// when the parent has a module of its own.
//
// A concept with its own module is imported from that module
// (crate::tao::relation::Relation for tao/relation/mod.rs); every other
// concept is re-exported by the mod.rs of the module containing it
// (crate::tao::relation::Flag for tao/relation/flag.rs).
type TreeResolver struct {
	ont *Ontology
}

var _ Resolver = (*TreeResolver)(nil)

// NewTreeResolver creates a resolver over a validated ontology.
func NewTreeResolver(o *Ontology) *TreeResolver {
	return &TreeResolver{ont: o}
}

// Module returns the module segments c is placed in.
func (r *TreeResolver) Module(c *Concept) []string {
	if c.Module != "" {
		return splitModule(c.Module)
	}
	if p := r.ont.ParentOf(c); p != nil {
		return r.ChildModule(p)
	}
	return nil
}

// ChildModule returns the module children of c are placed in by default.
func (r *TreeResolver) ChildModule(c *Concept) []string {
	m := r.Module(c)
	if c.OwnModule {
		return append(append([]string(nil), m...), casing.Snake(c.Name))
	}
	return m
}

// FilePath implements Resolver.
func (r *TreeResolver) FilePath(c *Concept) string {
	dirs := r.Module(c)
	snake := casing.Snake(c.Name)
	if c.OwnModule {
		return path.Join(append(dirs, snake, "mod.rs")...)
	}
	return path.Join(append(dirs, snake+".rs")...)
}

// OwnModule implements Resolver.
func (r *TreeResolver) OwnModule(c *Concept) bool {
	return c.OwnModule
}

// ImportPath implements Resolver.
func (r *TreeResolver) ImportPath(c *Concept) string {
	if c.External {
		return c.Import
	}
	parts := []string{imports.PackagePlaceholder}
	parts = append(parts, r.Module(c)...)
	if c.OwnModule || len(r.Module(c)) == 0 {
		parts = append(parts, casing.Snake(c.Name))
	}
	parts = append(parts, c.Name)
	return imports.Qualify(parts...)
}

// ModuleIndex describes one generated module directory and what its mod.rs
// has to declare.
type ModuleIndex struct {
	Path []string

	// Owner is the concept whose own mod.rs this module is, if any.
	Owner *Concept

	// Submodules are the child directory names, sorted.
	Submodules []string

	// Members are concepts with a plain .rs file directly in this module,
	// sorted by name.
	Members []*Concept

	// External modules belong to an external concept. Their mod.rs already
	// exists in the crate and is maintained by hand.
	External bool
}

// FilePath is the mod.rs this index is rendered into.
func (m *ModuleIndex) FilePath() string {
	return path.Join(append(append([]string(nil), m.Path...), "mod.rs")...)
}

// Name is the last path segment.
func (m *ModuleIndex) Name() string {
	if len(m.Path) == 0 {
		return ""
	}
	return m.Path[len(m.Path)-1]
}

// Modules returns every non-root module generated concepts live in, sorted
// by path. The crate root is left to the crate's own lib.rs.
func (r *TreeResolver) Modules() []*ModuleIndex {
	byPath := make(map[string]*ModuleIndex)
	var ensure func(p []string) *ModuleIndex
	ensure = func(p []string) *ModuleIndex {
		key := strings.Join(p, "::")
		if m, ok := byPath[key]; ok {
			return m
		}
		m := &ModuleIndex{Path: append([]string(nil), p...)}
		byPath[key] = m
		if len(p) > 1 {
			parent := ensure(p[:len(p)-1])
			parent.Submodules = appendUnique(parent.Submodules, p[len(p)-1])
		}
		return m
	}

	for _, c := range r.ont.Generated() {
		if c.OwnModule {
			ensure(r.ChildModule(c)).Owner = c
			continue
		}
		if m := r.Module(c); len(m) > 0 {
			idx := ensure(m)
			idx.Members = append(idx.Members, c)
		}
	}

	for _, c := range r.ont.Concepts {
		if c.External && c.OwnModule {
			if m, ok := byPath[strings.Join(r.ChildModule(c), "::")]; ok {
				m.External = true
			}
		}
	}

	out := make([]*ModuleIndex, 0, len(byPath))
	for _, m := range byPath {
		sort.Strings(m.Submodules)
		sort.Slice(m.Members, func(i, j int) bool { return m.Members[i].Name < m.Members[j].Name })
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i].Path, "/") < strings.Join(out[j].Path, "/")
	})
	return out
}

// ModuleOf returns the index for the module owned by c, or nil.
func (r *TreeResolver) ModuleOf(c *Concept) *ModuleIndex {
	if !c.OwnModule {
		return nil
	}
	for _, m := range r.Modules() {
		if m.Owner == c {
			return m
		}
	}
	return nil
}

func splitModule(m string) []string {
	var out []string
	for _, seg := range strings.Split(m, "::") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
