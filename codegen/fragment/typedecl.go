package fragment

// TypeKind selects the keyword a TypeDeclaration opens with.
type TypeKind int

const (
	Struct TypeKind = iota
	Enum
)

func (k TypeKind) keyword() string {
	if k == Enum {
		return "enum"
	}
	return "struct"
}

// Field is a struct field, or an enum variant when Type is the zero Symbol.
type Field struct {
	Name   string
	Type   Symbol
	Doc    string
	Public bool
}

// TypeDeclaration is a struct or enum definition. DocWidth also applies to
// field docs.
type TypeDeclaration struct {
	Name       string
	Kind       TypeKind
	Doc        string
	DocWidth   int
	Attributes []string
	Public     bool

	// SameFile reports that field types are declared in the same file and
	// need no import.
	SameFile bool

	Fields []Field
}

// NewStruct creates an empty struct declaration.
func NewStruct(name string) *TypeDeclaration {
	return &TypeDeclaration{Name: name, Kind: Struct}
}

// NewEnum creates an empty enum declaration.
func NewEnum(name string) *TypeDeclaration {
	return &TypeDeclaration{Name: name, Kind: Enum}
}

// AddField appends a field.
func (d *TypeDeclaration) AddField(f Field) *TypeDeclaration {
	d.Fields = append(d.Fields, f)
	return d
}

// AddVariant appends an enum variant without payload.
func (d *TypeDeclaration) AddVariant(name, doc string) *TypeDeclaration {
	return d.AddField(Field{Name: name, Doc: doc})
}

func (d *TypeDeclaration) content() *Appended {
	members := Lines()
	for _, f := range d.Fields {
		text := f.Name + ","
		if f.Type.Name != "" {
			text = f.Name + ": " + f.Type.Name + ","
		}
		members.Append(&Item{
			Doc:        f.Doc,
			DocWidth:   d.DocWidth,
			Public:     f.Public && d.Kind == Struct,
			Definition: Text(text),
		})
	}
	return members
}

func (d *TypeDeclaration) body(width int) string {
	n := &Nested{
		Preamble:  Text(d.Kind.keyword() + " " + d.Name + " {"),
		Child:     d.content(),
		Postamble: "}",
	}
	return declaration{
		doc:        d.Doc,
		docWidth:   d.DocWidth,
		attributes: d.Attributes,
		public:     d.Public,
	}.render(n.body(width), width)
}

func (d *TypeDeclaration) imports() []string {
	if d.SameFile {
		return nil
	}
	var out []string
	for _, f := range d.Fields {
		out = append(out, symbolImports(f.Type)...)
	}
	return out
}
