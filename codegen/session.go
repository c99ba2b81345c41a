package codegen

import (
	"sync"

	"github.com/google/uuid"

	"github.com/teranos/ontogen/am"
	"github.com/teranos/ontogen/codegen/fragment"
	"github.com/teranos/ontogen/codegen/ontology"
	"github.com/teranos/ontogen/errors"
)

// Options control one generation run.
type Options struct {
	LineWidth int
	DocWidth  int

	// Header prepends the generated-code banner.
	Header bool
	// Source is recorded in the banner when set.
	Source *SourceInfo

	// Tests emits test modules.
	Tests bool

	Workers int

	// PackageAlias replaces "crate" in generated imports; it falls back to
	// the ontology's package.
	PackageAlias string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		LineWidth: fragment.DefaultWidth,
		DocWidth:  fragment.DefaultWidth,
		Header:    true,
		Tests:     true,
		Workers:   4,
	}
}

// OptionsFromConfig maps configuration onto generation options. The source
// version is looked up separately since it needs the ontology path.
func OptionsFromConfig(cfg *am.Config) Options {
	return Options{
		LineWidth:    cfg.Render.LineWidth,
		DocWidth:     cfg.Render.DocWidth,
		Header:       cfg.Output.Header,
		Tests:        cfg.Generate.Tests,
		Workers:      cfg.Generate.Workers,
		PackageAlias: cfg.Package.Alias,
	}
}

// Session carries everything one generation run shares: the ontology, the
// resolver, options and the type ID counter.
type Session struct {
	ID       string
	Ontology *ontology.Ontology
	Resolver ontology.Resolver
	Modules  []*ontology.ModuleIndex
	Options  Options

	mu     sync.Mutex
	nextID int
	ids    map[string]int
}

// NewSession creates a session over a validated ontology using the tree
// resolver. Type IDs start at the ontology's first_id.
func NewSession(o *ontology.Ontology, opts Options) *Session {
	tree := ontology.NewTreeResolver(o)
	if opts.PackageAlias == "" {
		opts.PackageAlias = o.Package
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = fragment.DefaultWidth
	}
	if opts.DocWidth <= 0 {
		opts.DocWidth = opts.LineWidth
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Session{
		ID:       uuid.New().String(),
		Ontology: o,
		Resolver: tree,
		Modules:  tree.Modules(),
		Options:  opts,
		nextID:   o.FirstID,
		ids:      make(map[string]int),
	}
}

// NextID returns the next unused type ID.
func (s *Session) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// AssignIDs gives every generated concept a type ID, in ontology order.
// Concepts that already have one keep it.
func (s *Session) AssignIDs() {
	for _, c := range s.Ontology.Generated() {
		s.mu.Lock()
		_, ok := s.ids[c.Name]
		s.mu.Unlock()
		if ok {
			continue
		}
		id := s.NextID()
		s.mu.Lock()
		s.ids[c.Name] = id
		s.mu.Unlock()
	}
}

// TypeID returns the ID assigned to c.
func (s *Session) TypeID(c *ontology.Concept) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[c.Name]
	if !ok {
		return 0, errors.Wrapf(errors.NewUnknownConceptError(c.Name), "no type ID assigned")
	}
	return id, nil
}

// ModuleOf returns the module index owned by c, or nil.
func (s *Session) ModuleOf(c *ontology.Concept) *ontology.ModuleIndex {
	for _, m := range s.Modules {
		if m.Owner == c {
			return m
		}
	}
	return nil
}

// Import returns the import path of the concept called name.
func (s *Session) Import(name string) (string, error) {
	c, err := s.Ontology.Lookup(name)
	if err != nil {
		return "", err
	}
	return s.Resolver.ImportPath(c), nil
}
