package fragment

import "strings"

// Atomic is a leaf: literal text plus the symbols it references.
type Atomic struct {
	Uses []string
	Text string
}

// NewAtomic creates a leaf fragment.
func NewAtomic(text string, uses ...string) *Atomic {
	return &Atomic{Text: text, Uses: uses}
}

// Text is NewAtomic for text that references nothing.
func Text(text string) *Atomic {
	return &Atomic{Text: text}
}

func (a *Atomic) body() string {
	if a == nil {
		return ""
	}
	return a.Text
}

func (a *Atomic) imports() []string {
	if a == nil || len(a.Uses) == 0 {
		return nil
	}
	return append([]string(nil), a.Uses...)
}

// Appended joins its children in order with Separator. Children that render
// to nothing are dropped before joining, so no separator doubles up.
type Appended struct {
	Children  []Fragment
	Separator string
}

// NewAppended creates an Appended with the given separator and children.
func NewAppended(separator string, children ...Fragment) *Appended {
	return &Appended{Separator: separator, Children: children}
}

// Lines joins children one per line.
func Lines(children ...Fragment) *Appended {
	return NewAppended("\n", children...)
}

// Blocks joins children with a blank line between them.
func Blocks(children ...Fragment) *Appended {
	return NewAppended("\n\n", children...)
}

// Append adds children at the end.
func (a *Appended) Append(children ...Fragment) *Appended {
	a.Children = append(a.Children, children...)
	return a
}

// Len returns the number of children.
func (a *Appended) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Children)
}

func (a *Appended) body(width int) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.Children))
	for _, c := range a.Children {
		if b := Body(c, width); b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, a.Separator)
}

func (a *Appended) imports() []string {
	if a == nil {
		return nil
	}
	var out []string
	for _, c := range a.Children {
		out = append(out, Imports(c)...)
	}
	return out
}
