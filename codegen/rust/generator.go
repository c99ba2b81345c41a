// Package rust generates Rust archetype definitions from an ontology.
//
// Each generated concept becomes a newtype over the crate's FinalNode with
// the trait implementations a knowledge-base archetype needs, plus unit
// tests checking the type is registered. Everything is assembled from
// codegen/fragment pieces; this package never formats Rust by hand beyond
// single statements.
package rust

import (
	"fmt"
	"strings"

	"github.com/teranos/ontogen/codegen"
	"github.com/teranos/ontogen/codegen/casing"
	"github.com/teranos/ontogen/codegen/fragment"
	"github.com/teranos/ontogen/codegen/ontology"
	"github.com/teranos/ontogen/errors"
)

// Banner is the first line of every generated file.
const Banner = "// Code generated by ontogen. DO NOT EDIT."

// Generator implements codegen.Generator for Rust
type Generator struct {
	Runtime Runtime
}

var _ codegen.Generator = (*Generator)(nil)

// NewGenerator creates a new Rust generator
func NewGenerator() *Generator {
	return &Generator{Runtime: DefaultRuntime}
}

// Language returns "rust"
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns "rs"
func (g *Generator) FileExtension() string {
	return "rs"
}

// GenerateFile builds the file defining c.
func (g *Generator) GenerateFile(s *codegen.Session, c *ontology.Concept) (*fragment.File, error) {
	if c.External {
		return nil, errors.AssertionFailedf("external concept %q is not generated", c.Name)
	}
	id, err := s.TypeID(c)
	if err != nil {
		return nil, err
	}
	parent := s.Ontology.ParentOf(c)
	if parent == nil {
		return nil, errors.NewInvalidOntologyError("concept %q has no parent", c.Name)
	}

	self := fragment.Symbol{Name: c.Name, Import: s.Resolver.ImportPath(c)}
	file := fragment.NewFile()
	file.Preamble = header(s)
	file.SelfImport = self.Import
	file.PackageAlias = s.Options.PackageAlias

	if m := s.ModuleOf(c); m != nil {
		file.Append(moduleDeclarations(m)...)
	}

	file.Append(
		g.structDeclaration(s, c),
		g.debugImpl(self),
		g.fromImpl(self),
		g.archetypeImpl(s, c, self, id, parent),
		g.formImpl(self),
	)

	switch c.EffectiveKind() {
	case ontology.KindAttribute:
		impl, err := g.attributeImpl(s, c, self)
		if err != nil {
			return nil, err
		}
		file.Append(impl)
	case ontology.KindData:
		file.Append(g.dataImpl(s, c, self))
	}

	if s.Options.Tests {
		file.AddTest(g.tests(c)...)
	}
	return file, nil
}

// GenerateIndex builds a mod.rs that only declares and re-exports.
func (g *Generator) GenerateIndex(s *codegen.Session, m *ontology.ModuleIndex) (*fragment.File, error) {
	if m.Owner != nil {
		return nil, errors.AssertionFailedf("module %s is owned by %q", m.FilePath(), m.Owner.Name)
	}
	file := fragment.NewFile()
	file.Preamble = header(s)
	file.Append(moduleDeclarations(m)...)
	return file, nil
}

func header(s *codegen.Session) *fragment.Atomic {
	if !s.Options.Header {
		return nil
	}
	lines := []string{Banner}
	if src := s.Options.Source; src != nil {
		lines = append(lines,
			codegen.SourceVersionPrefix+" "+src.Short(),
			codegen.SourceLastModifiedPrefix+" "+src.LastModified.Format("2006-01-02"))
	}
	return fragment.Text(strings.Join(lines, "\n"))
}

// moduleDeclarations declares a module's children and re-exports the
// concepts defined in its plain files.
func moduleDeclarations(m *ontology.ModuleIndex) []fragment.Fragment {
	mods := fragment.Lines()
	for _, sub := range m.Submodules {
		mods.Append(fragment.Text("pub mod " + sub + ";"))
	}
	reexports := fragment.Lines()
	for _, c := range m.Members {
		snake := casing.Snake(c.Name)
		mods.Append(fragment.Text("mod " + snake + ";"))
		reexports.Append(fragment.Text("pub use " + snake + "::" + c.Name + ";"))
	}
	return []fragment.Fragment{mods, reexports}
}

func (g *Generator) structDeclaration(s *codegen.Session, c *ontology.Concept) fragment.Fragment {
	decl := fragment.NewStruct(c.Name)
	decl.Doc = c.Doc
	decl.DocWidth = s.Options.DocWidth
	decl.Public = true
	decl.Attributes = []string{"derive(Copy, Clone, Eq, PartialEq, Hash)"}
	decl.AddField(fragment.Field{Name: "base", Type: fragment.NewSymbol(g.Runtime.FinalNode)})
	return decl
}

func (g *Generator) debugImpl(self fragment.Symbol) fragment.Fragment {
	fmtFn := fragment.NewFunction("fmt").
		Param("f", fragment.Symbol{Name: "&mut Formatter", Import: stdFormatter}).
		Returns(fragment.Symbol{Name: "fmt::Result", Import: stdFmt})
	fmtFn.SelfParam = "&self"

	call := fragment.NewCallExpr("debug_wrapper",
		fragment.Text(fmt.Sprintf("%q", self.Name)),
		fragment.Text("self"),
		fragment.Text("f"))
	call.Uses = []string{g.Runtime.DebugWrapper}
	fmtFn.Append(call)

	impl := fragment.NewTraitImpl(fragment.NewSymbol(stdDebug), self)
	impl.SameFile = true
	return impl.Append(fmtFn)
}

func (g *Generator) fromImpl(self fragment.Symbol) fragment.Fragment {
	literal := &fragment.Nested{
		Preamble:  fragment.Text("Self {"),
		Child:     fragment.NewAtomic("base: FinalNode::from(id),", g.Runtime.FinalNode),
		Postamble: "}",
	}
	from := fragment.NewFunction("from").
		Param("id", fragment.Local("usize")).
		Returns(fragment.Local("Self")).
		Append(literal)

	impl := fragment.NewTraitImpl(fragment.Local("From<usize>"), self)
	impl.SameFile = true
	return impl.Append(from)
}

func (g *Generator) archetypeImpl(s *codegen.Session, c *ontology.Concept, self fragment.Symbol, id int, parent *ontology.Concept) fragment.Fragment {
	archetype := fragment.NewSymbol(g.Runtime.Archetype)
	if c.EffectiveKind() == ontology.KindAttribute {
		archetype = fragment.NewSymbol(g.Runtime.AttributeArchetype)
	}
	parentSym := fragment.Symbol{Name: parent.Name, Import: s.Resolver.ImportPath(parent)}

	types := fragment.Lines(
		fragment.NewAtomic("type ArchetypeForm = "+archetype.Name+";", archetype.Import),
		fragment.Text("type Form = "+self.Name+";"),
	)
	consts := fragment.Lines(
		fragment.Text(fmt.Sprintf("const TYPE_ID: usize = %d;", id)),
		fragment.Text(fmt.Sprintf("const TYPE_NAME: &'static str = %q;", casing.Snake(c.Name))),
		fragment.NewAtomic("const PARENT_TYPE_ID: usize = "+parentSym.Name+"::TYPE_ID;", parentSym.Import),
	)

	impl := fragment.NewTraitImpl(fragment.NewSymbol(g.Runtime.ArchetypeTrait), self)
	impl.SameFile = true
	return impl.Append(types, consts)
}

func (g *Generator) formImpl(self fragment.Symbol) fragment.Fragment {
	node := fragment.NewSymbol(g.Runtime.FinalNode)

	essence := fragment.NewFunction("essence").
		Returns(fragment.Symbol{Name: "&" + node.Name, Import: node.Import}).
		Append(fragment.Text("&self.base"))
	essence.SelfParam = "&self"

	essenceMut := fragment.NewFunction("essence_mut").
		Returns(fragment.Symbol{Name: "&mut " + node.Name, Import: node.Import}).
		Append(fragment.Text("&mut self.base"))
	essenceMut.SelfParam = "&mut self"

	impl := fragment.NewTraitImpl(fragment.NewSymbol(g.Runtime.FormTrait), self)
	impl.SameFile = true
	return impl.Append(essence, essenceMut)
}

func (g *Generator) attributeImpl(s *codegen.Session, c *ontology.Concept, self fragment.Symbol) (fragment.Fragment, error) {
	owner, err := s.Import(c.Owner)
	if err != nil {
		return nil, errors.Wrapf(err, "owner of %s", c.Name)
	}
	value, err := s.Import(c.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "value of %s", c.Name)
	}

	impl := fragment.NewTraitImpl(fragment.NewSymbol(g.Runtime.AttributeTrait), self)
	impl.SameFile = true
	return impl.Append(fragment.Lines(
		fragment.NewAtomic("type OwnerForm = "+c.Owner+";", owner),
		fragment.NewAtomic("type ValueForm = "+c.Value+";", value),
	)), nil
}

func primitive(c *ontology.Concept) fragment.Symbol {
	if strings.Contains(c.Primitive, "::") {
		return fragment.NewSymbol(c.Primitive)
	}
	return fragment.Local(c.Primitive)
}

func (g *Generator) dataImpl(s *codegen.Session, c *ontology.Concept, self fragment.Symbol) fragment.Fragment {
	prim := primitive(c)
	strong := fragment.NewSymbol(g.Runtime.StrongValue)

	newStrong := fragment.NewCallExpr(strong.Name+"::new", fragment.Text("value"))
	newStrong.Uses = []string{strong.Import}
	newRc := fragment.NewCallExpr("Rc::new", newStrong)
	newRc.Uses = []string{stdRc}

	set := fragment.NewFunction("set_value").
		Param("value", prim).
		Append(fragment.NewCall("self.essence_mut().set_value", newRc))
	set.Doc = fmt.Sprintf("Set %s value for this concept.", prim.Name)
	set.DocWidth = s.Options.DocWidth
	set.Public = true
	set.SelfParam = "&mut self"

	get := fragment.NewFunction("value").
		Returns(fragment.Symbol{Name: "Option<Rc<" + prim.Name + ">>", Import: stdRc}).
		Append(fragment.NewAtomic(
			"unwrap_value::<"+prim.Name+">(self.essence().value())",
			g.Runtime.UnwrapValue))
	get.Doc = fmt.Sprintf("Retrieve %s-valued StrongValue.", prim.Name)
	get.DocWidth = s.Options.DocWidth
	get.Public = true
	get.SelfParam = "&self"
	get.Uses = []string{g.Runtime.FormTrait}

	impl := fragment.NewImpl(self)
	impl.SameFile = true
	return impl.Append(set, get)
}

func (g *Generator) tests(c *ontology.Concept) []fragment.Fragment {
	initKB := fragment.NewCall("initialize_kb")
	initKB.Uses = []string{g.Runtime.InitializeKB}

	created := testFunction("check_type_created",
		initKB,
		fragment.NewCall("assert_eq!",
			fragment.Text(c.Name+"::archetype().id()"),
			fragment.Text(c.Name+"::TYPE_ID")),
		&fragment.FunctionCall{
			Name: "assert_eq!",
			Args: []fragment.Fragment{
				fragment.Text(c.Name + "::archetype().internal_name()"),
				fragment.NewCallExpr("Some", fragment.Text("Rc::from("+c.Name+"::TYPE_NAME)")),
			},
			Uses: []string{stdRc},
		},
	)
	out := []fragment.Fragment{created}

	switch c.EffectiveKind() {
	case ontology.KindAttribute:
		out = append(out, testFunction("check_type_attributes",
			initKB,
			fragment.NewCall("assert_eq!",
				fragment.Text(c.Name+"::archetype().owner_archetype()"),
				fragment.Text(c.Owner+"::archetype().as_archetype()")),
			fragment.NewCall("assert_eq!",
				fragment.Text(c.Name+"::archetype().value_archetype()"),
				fragment.Text(c.Value+"::archetype().as_archetype()")),
		))
	case ontology.KindData:
		value := c.Default
		if value == "" {
			value = primitive(c).Name + "::default()"
		}
		out = append(out,
			testFunction("get_value_none",
				initKB,
				fragment.Text("let concept = "+c.Name+"::new();"),
				fragment.NewCall("assert_eq!", fragment.Text("concept.value()"), fragment.Text("None")),
			),
			testFunction("get_value_some",
				initKB,
				fragment.Text("let mut concept = "+c.Name+"::new();"),
				fragment.NewCall("concept.set_value", fragment.Text(value)),
				fragment.NewCall("assert_eq!",
					fragment.Text("concept.value()"),
					fragment.NewCallExpr("Some", fragment.NewCallExpr("Rc::new", fragment.Text(value)))),
			),
		)
	}
	return out
}

func testFunction(name string, stmts ...fragment.Fragment) fragment.Fragment {
	fn := fragment.NewFunction(name).Append(stmts...)
	fn.Attributes = []string{"test"}
	return fn
}
