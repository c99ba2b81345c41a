package fragment

import "strings"

// Param is one function parameter.
type Param struct {
	Name string
	Type Symbol
}

// Function is a function definition. Its body always breaks onto its own
// lines, even when empty:
//
//	fn noop() {
//	}
type Function struct {
	Name       string
	Doc        string
	DocWidth   int
	Attributes []string
	Public     bool

	// SelfParam is the receiver, e.g. "&self" or "&mut self"; empty for
	// associated functions.
	SelfParam  string
	Params     []Param
	ReturnType *Symbol
	Uses       []string

	content *Appended
}

// NewFunction creates an empty function named name.
func NewFunction(name string) *Function {
	return &Function{Name: name, content: Lines()}
}

// Param adds a parameter.
func (f *Function) Param(name string, typ Symbol) *Function {
	f.Params = append(f.Params, Param{Name: name, Type: typ})
	return f
}

// Returns sets the return type.
func (f *Function) Returns(typ Symbol) *Function {
	f.ReturnType = &typ
	return f
}

// Append adds statements to the body, one per line.
func (f *Function) Append(stmts ...Fragment) *Function {
	f.contentOrInit().Append(stmts...)
	return f
}

func (f *Function) contentOrInit() *Appended {
	if f.content == nil {
		f.content = Lines()
	}
	return f.content
}

func (f *Function) signature() string {
	params := make([]string, 0, len(f.Params)+1)
	if f.SelfParam != "" {
		params = append(params, f.SelfParam)
	}
	for _, p := range f.Params {
		params = append(params, p.Name+": "+p.Type.Name)
	}

	var sb strings.Builder
	sb.WriteString("fn ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(")")
	if f.ReturnType != nil {
		sb.WriteString(" -> ")
		sb.WriteString(f.ReturnType.Name)
	}
	sb.WriteString(" {")
	return sb.String()
}

func (f *Function) nested() *Nested {
	return &Nested{
		Preamble:   Text(f.signature()),
		Child:      f.contentOrInit(),
		Postamble:  "}",
		ForceBreak: true,
	}
}

func (f *Function) body(width int) string {
	return declaration{
		doc:        f.Doc,
		docWidth:   f.DocWidth,
		attributes: f.Attributes,
		public:     f.Public,
	}.render(f.nested().body(width), width)
}

func (f *Function) imports() []string {
	out := append([]string(nil), f.Uses...)
	for _, p := range f.Params {
		out = append(out, symbolImports(p.Type)...)
	}
	if f.ReturnType != nil {
		out = append(out, symbolImports(*f.ReturnType)...)
	}
	return append(out, f.contentOrInit().imports()...)
}
