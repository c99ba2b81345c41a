// Package fragment composes generated Rust source from small pieces.
//
// A Fragment is a unit of generated text plus the fully-qualified symbols that
// text references. Fragments nest into a tree: leaves are Atomic, Appended
// joins siblings, Nested adds one level of indentation and decides whether its
// child fits on the current line, and Module and File close a scope by turning
// the symbols collected below them into a use block.
//
// # Design
//
// The set of fragment kinds is closed. Body and Imports dispatch with an
// exhaustive type switch, so every layout rule lives in this package and can
// be tested in isolation. Composites (Function, Implementation, Trait,
// TypeDeclaration, FunctionCall, Item) are built bottom-up through their
// builder methods and then rendered once; a tree is not mutated after Body
// has been called on it.
//
// Rendering is pure: the same tree at the same width always yields the same
// text. Contract violations such as a nil child panic with an assertion
// failure rather than returning an error.
package fragment

import (
	"github.com/teranos/ontogen/errors"
)

const (
	// Indent is the number of spaces one level of nesting adds.
	Indent = 4

	// DefaultWidth is the line width files are rendered at.
	DefaultWidth = 80
)

// Fragment is implemented only by the kinds declared in this package.
type Fragment interface {
	fragment()
}

func (*Atomic) fragment()          {}
func (*Appended) fragment()        {}
func (*Nested) fragment()          {}
func (*Module) fragment()          {}
func (*File) fragment()            {}
func (*Item) fragment()            {}
func (*FunctionCall) fragment()    {}
func (*Function) fragment()        {}
func (*Implementation) fragment()  {}
func (*Trait) fragment()           {}
func (*TypeDeclaration) fragment() {}

// Body renders f for the given available line width.
func Body(f Fragment, width int) string {
	switch f := f.(type) {
	case *Atomic:
		return f.body()
	case *Appended:
		return f.body(width)
	case *Nested:
		return f.body(width)
	case *Module:
		return f.body(width)
	case *File:
		return f.body(width)
	case *Item:
		return f.body(width)
	case *FunctionCall:
		return f.body(width)
	case *Function:
		return f.body(width)
	case *Implementation:
		return f.body(width)
	case *Trait:
		return f.body(width)
	case *TypeDeclaration:
		return f.body(width)
	case nil:
		panic(errors.AssertionFailedf("fragment: render of nil fragment"))
	default:
		panic(errors.AssertionFailedf("fragment: unknown fragment kind %T", f))
	}
}

// Imports returns every qualified symbol f references, in tree order and with
// duplicates kept. Module and File are scope boundaries and report nothing.
func Imports(f Fragment) []string {
	switch f := f.(type) {
	case *Atomic:
		return f.imports()
	case *Appended:
		return f.imports()
	case *Nested:
		return f.imports()
	case *Module, *File:
		return nil
	case *Item:
		return f.imports()
	case *FunctionCall:
		return f.imports()
	case *Function:
		return f.imports()
	case *Implementation:
		return f.imports()
	case *Trait:
		return f.imports()
	case *TypeDeclaration:
		return f.imports()
	case nil:
		panic(errors.AssertionFailedf("fragment: imports of nil fragment"))
	default:
		panic(errors.AssertionFailedf("fragment: unknown fragment kind %T", f))
	}
}

// Render renders f at DefaultWidth.
func Render(f Fragment) string {
	return Body(f, DefaultWidth)
}

// Symbol is a name as written in generated code together with the qualified
// path that brings it into scope. An empty Import means the name needs no use
// line (a primitive, a prelude type, or something defined locally).
type Symbol struct {
	Name   string
	Import string
}

// NewSymbol builds a Symbol whose name is the last segment of import.
func NewSymbol(qualified string) Symbol {
	return Symbol{Name: lastSegment(qualified), Import: qualified}
}

// Local builds a Symbol that never needs importing.
func Local(name string) Symbol {
	return Symbol{Name: name}
}

func lastSegment(qualified string) string {
	for i := len(qualified) - 1; i > 0; i-- {
		if qualified[i] == ':' && qualified[i-1] == ':' {
			return qualified[i+1:]
		}
	}
	return qualified
}

func symbolImports(syms ...Symbol) []string {
	var out []string
	for _, s := range syms {
		if s.Import != "" {
			out = append(out, s.Import)
		}
	}
	return out
}
