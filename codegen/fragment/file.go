package fragment

import (
	"strings"

	"github.com/teranos/ontogen/codegen/imports"
)

// File is a complete source file: an optional preamble (typically a
// generated-code header), a use block synthesized from everything the content
// references, the content itself and, when any tests were added, a trailing
// test module.
//
// The use block never names SelfImport, the symbol the file defines, and
// every leading "crate" segment is replaced with PackageAlias when set.
// Modules in the content without an alias of their own use the file's.
type File struct {
	Preamble     *Atomic
	Content      *Appended
	Tests        []Fragment
	SelfImport   string
	PackageAlias string
}

// NewFile creates an empty file whose top-level items are separated by blank
// lines.
func NewFile() *File {
	return &File{Content: Blocks()}
}

// Append adds top-level items.
func (f *File) Append(items ...Fragment) *File {
	if f.Content == nil {
		f.Content = Blocks()
	}
	f.Content.Append(items...)
	return f
}

// AddTest adds items to the file's test module.
func (f *File) AddTest(tests ...Fragment) *File {
	f.Tests = append(f.Tests, tests...)
	return f
}

func (f *File) testModule() *Module {
	if len(f.Tests) == 0 {
		return nil
	}
	m := NewTestModule()
	m.PackageAlias = f.PackageAlias
	m.Append(f.Tests...)
	return m
}

// UseBlock returns the rendered use statements for the file.
func (f *File) UseBlock() string {
	uses := f.Content.imports()
	if tm := f.testModule(); tm != nil {
		uses = append(uses, Imports(tm)...)
	}

	self := imports.Substitute(f.SelfImport, f.PackageAlias)
	kept := make([]string, 0, len(uses))
	for _, u := range uses {
		u = imports.Substitute(u, f.PackageAlias)
		if f.SelfImport != "" && u == self {
			continue
		}
		kept = append(kept, u)
	}
	return imports.Format(imports.Dedup(kept))
}

func (f *File) body(width int) string {
	main := Blocks(inheritAlias(f.Content, f.PackageAlias))
	if tm := f.testModule(); tm != nil {
		main.Append(tm)
	}

	var sections []string
	for _, s := range []string{
		f.Preamble.body(),
		f.UseBlock(),
		Body(main, width),
	} {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

// GenerateCode renders the file at DefaultWidth with a trailing newline.
func (f *File) GenerateCode() string {
	return f.GenerateCodeWidth(DefaultWidth)
}

// GenerateCodeWidth renders the file at width with a trailing newline.
func (f *File) GenerateCodeWidth(width int) string {
	return f.body(width) + "\n"
}
