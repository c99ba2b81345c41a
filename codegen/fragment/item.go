package fragment

import (
	"strings"

	"github.com/teranos/ontogen/codegen/docwrap"
)

// Item is a declaration: an optional doc comment, attributes such as
// `derive(Clone)` (rendered `#[derive(Clone)]`, one per line), an optional
// `pub` prefix and the definition itself.
//
// DocWidth caps the width Doc wraps at, here and on every other composite
// with a doc; zero wraps at the available width. A doc never wraps wider
// than the available width.
type Item struct {
	Doc        string
	DocWidth   int
	Attributes []string
	Public     bool
	Definition Fragment
	Uses       []string
}

// NewItem wraps a definition as a private, undocumented item.
func NewItem(definition Fragment) *Item {
	return &Item{Definition: definition}
}

func (it *Item) body(width int) string {
	return declaration{
		doc:        it.Doc,
		docWidth:   it.DocWidth,
		attributes: it.Attributes,
		public:     it.Public,
	}.render(Body(it.Definition, width), width)
}

func (it *Item) imports() []string {
	out := append([]string(nil), it.Uses...)
	return append(out, Imports(it.Definition)...)
}

// declaration holds the parts every item-like composite shares.
type declaration struct {
	doc        string
	docWidth   int
	attributes []string
	public     bool
}

func (d declaration) render(definition string, width int) string {
	var parts []string
	docWidth := width
	if d.docWidth > 0 && d.docWidth < width {
		docWidth = d.docWidth
	}
	if doc := docwrap.WrapWidth(d.doc, 0, docwrap.LineDoc, docWidth); doc != "" {
		parts = append(parts, doc)
	}
	for _, attr := range d.attributes {
		if attr = strings.TrimSpace(attr); attr != "" {
			parts = append(parts, "#["+attr+"]")
		}
	}
	if definition = strings.TrimSpace(definition); definition != "" {
		if d.public {
			definition = "pub " + definition
		}
		parts = append(parts, definition)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
