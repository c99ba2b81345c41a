package fragment

import "github.com/teranos/ontogen/codegen/imports"

// TestModuleName is the name given to a file's synthesized test module.
const TestModuleName = "tests"

// Module is a named `mod` block. It is an import boundary: it renders its own
// use block from the symbols its content references, and reports no imports
// to its parent. A test module is annotated `#[cfg(test)]` and also brings
// the enclosing scope into view with `use super::*;`.
type Module struct {
	Name   string
	Test   bool
	Public bool

	// PackageAlias replaces the leading "crate" segment of use lines.
	PackageAlias string

	Content *Appended
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name, Content: Blocks()}
}

// NewTestModule creates an empty `#[cfg(test)] mod tests`.
func NewTestModule() *Module {
	return &Module{Name: TestModuleName, Test: true, Content: Blocks()}
}

// Append adds items to the module.
func (m *Module) Append(items ...Fragment) *Module {
	if m.Content == nil {
		m.Content = Blocks()
	}
	m.Content.Append(items...)
	return m
}

func (m *Module) useBlock() string {
	uses := m.Content.imports()
	if m.Test {
		uses = append(uses, imports.Qualify(imports.Rust.RelativePrefix, "*"))
	}
	for i, u := range uses {
		uses[i] = imports.Substitute(u, m.PackageAlias)
	}
	return imports.Format(imports.Dedup(uses))
}

func (m *Module) body(width int) string {
	n := &Nested{
		Preamble:  Text("mod " + m.Name + " {"),
		Child:     Blocks(Text(m.useBlock()), inheritAlias(m.Content, m.PackageAlias)),
		Postamble: "}",
	}
	var attrs []string
	if m.Test {
		attrs = []string{"cfg(test)"}
	}
	return declaration{attributes: attrs, public: m.Public}.render(n.body(width), width)
}

// inheritAlias returns content with alias given to every module below it that
// has no alias of its own. Modules are copied; content is left untouched.
func inheritAlias(content *Appended, alias string) *Appended {
	if content == nil || alias == "" {
		return content
	}
	out := &Appended{Separator: content.Separator, Children: make([]Fragment, len(content.Children))}
	for i, c := range content.Children {
		switch c := c.(type) {
		case *Module:
			if c.PackageAlias == "" {
				cp := *c
				cp.PackageAlias = alias
				out.Children[i] = &cp
				continue
			}
		case *Appended:
			out.Children[i] = inheritAlias(c, alias)
			continue
		}
		out.Children[i] = c
	}
	return out
}
