package fragment

import "strings"

// FunctionCall renders `name(arg, arg);`. When the arguments do not fit on
// one line every argument moves to its own line with a trailing comma:
//
//	foo(
//	    bar,
//	    baz,
//	);
//
// Arguments may themselves be calls; set Expression on those so they close
// with `)` instead of `);`. Macro invocations work the same way with a name
// such as "assert_eq!".
type FunctionCall struct {
	Name       string
	Args       []Fragment
	Expression bool
	Uses       []string
}

// NewCall creates a statement call with the given arguments.
func NewCall(name string, args ...Fragment) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

// NewCallExpr creates a call used as an expression.
func NewCallExpr(name string, args ...Fragment) *FunctionCall {
	return &FunctionCall{Name: name, Args: args, Expression: true}
}

// Arg appends an argument.
func (c *FunctionCall) Arg(args ...Fragment) *FunctionCall {
	c.Args = append(c.Args, args...)
	return c
}

func (c *FunctionCall) postamble() string {
	if c.Expression {
		return ")"
	}
	return ");"
}

func (c *FunctionCall) body(width int) string {
	inline := &Nested{
		Preamble:  Text(c.Name + "("),
		Child:     NewAppended(", ", c.Args...),
		Postamble: c.postamble(),
	}
	if s := inline.body(width); !strings.Contains(s, "\n") {
		return s
	}

	broken := &Nested{
		Preamble:     Text(c.Name + "("),
		Child:        NewAppended(",\n", c.Args...),
		Postamble:    c.postamble(),
		ChildPostfix: ",",
		ForceBreak:   true,
	}
	return broken.body(width)
}

func (c *FunctionCall) imports() []string {
	out := append([]string(nil), c.Uses...)
	for _, a := range c.Args {
		out = append(out, Imports(a)...)
	}
	return out
}
