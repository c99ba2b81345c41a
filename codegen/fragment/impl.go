package fragment

import "strings"

// Implementation is an `impl` block, either inherent (Trait nil) or of a
// trait for a type. An empty block stays on one line: `impl Foo for Bar {}`.
type Implementation struct {
	Trait      *Symbol
	For        Symbol
	Doc        string
	DocWidth   int
	Attributes []string

	// SameFile reports that For is declared in the file being generated, so
	// its import is not needed.
	SameFile bool

	content *Appended
}

// NewImpl creates an inherent impl block for typ.
func NewImpl(typ Symbol) *Implementation {
	return &Implementation{For: typ, content: Blocks()}
}

// NewTraitImpl creates an impl of trait for typ.
func NewTraitImpl(trait, typ Symbol) *Implementation {
	return &Implementation{Trait: &trait, For: typ, content: Blocks()}
}

// Append adds items to the block, separated by blank lines.
func (i *Implementation) Append(items ...Fragment) *Implementation {
	i.contentOrInit().Append(items...)
	return i
}

func (i *Implementation) contentOrInit() *Appended {
	if i.content == nil {
		i.content = Blocks()
	}
	return i.content
}

func (i *Implementation) preamble() string {
	if i.Trait == nil {
		return "impl " + i.For.Name + " {"
	}
	return "impl " + i.Trait.Name + " for " + i.For.Name + " {"
}

func (i *Implementation) body(width int) string {
	n := &Nested{
		Preamble:  Text(i.preamble()),
		Child:     i.contentOrInit(),
		Postamble: "}",
	}
	return declaration{doc: i.Doc, docWidth: i.DocWidth, attributes: i.Attributes}.render(n.body(width), width)
}

func (i *Implementation) imports() []string {
	var out []string
	if i.Trait != nil {
		out = append(out, symbolImports(*i.Trait)...)
	}
	if !i.SameFile {
		out = append(out, symbolImports(i.For)...)
	}
	return append(out, i.contentOrInit().imports()...)
}

// Trait is a trait definition with optional supertraits.
type Trait struct {
	Name        string
	Doc         string
	DocWidth    int
	Public      bool
	Supertraits []Symbol

	// SameFile reports that the supertraits are declared alongside this trait.
	SameFile bool

	content *Appended
}

// NewTrait creates an empty trait.
func NewTrait(name string) *Trait {
	return &Trait{Name: name, content: Blocks()}
}

// Append adds items to the trait body.
func (t *Trait) Append(items ...Fragment) *Trait {
	t.contentOrInit().Append(items...)
	return t
}

func (t *Trait) contentOrInit() *Appended {
	if t.content == nil {
		t.content = Blocks()
	}
	return t.content
}

func (t *Trait) preamble() string {
	if len(t.Supertraits) == 0 {
		return "trait " + t.Name + " {"
	}
	names := make([]string, len(t.Supertraits))
	for i, s := range t.Supertraits {
		names[i] = s.Name
	}
	return "trait " + t.Name + ": " + strings.Join(names, " + ") + " {"
}

func (t *Trait) body(width int) string {
	n := &Nested{
		Preamble:  Text(t.preamble()),
		Child:     t.contentOrInit(),
		Postamble: "}",
	}
	return declaration{doc: t.Doc, docWidth: t.DocWidth, public: t.Public}.render(n.body(width), width)
}

func (t *Trait) imports() []string {
	var out []string
	if !t.SameFile {
		out = symbolImports(t.Supertraits...)
	}
	return append(out, t.contentOrInit().imports()...)
}
