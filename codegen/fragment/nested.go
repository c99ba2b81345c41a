package fragment

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var indentUnit = strings.Repeat(" ", Indent)

// Nested wraps a child in a preamble and postamble, either on one line or
// broken onto several with the child indented by Indent.
//
// The child is rendered at width-Indent. The result stays on one line when
// the child renders to a single line, the preamble opens no brace (or the
// child is empty), and the whole thing fits in width. Otherwise the preamble,
// the indented child and the postamble each get their own lines. An empty
// preamble gets no line, so the broken form starts with the indented child.
type Nested struct {
	Preamble  *Atomic
	Child     Fragment
	Postamble string

	// ChildPostfix is appended to the last child line when broken, e.g. a
	// trailing comma after the final argument.
	ChildPostfix string

	// ForceBreak skips the one-line attempt entirely.
	ForceBreak bool
}

// NewNested creates a Nested with a preamble that references nothing.
func NewNested(preamble string, child Fragment, postamble string) *Nested {
	return &Nested{Preamble: Text(preamble), Child: child, Postamble: postamble}
}

func (n *Nested) body(width int) string {
	pre := strings.TrimSpace(n.Preamble.body())
	post := strings.TrimSpace(n.Postamble)

	var inner string
	if n.Child != nil {
		inner = strings.TrimSpace(Body(n.Child, width-Indent))
	}

	if !n.ForceBreak && fitsInline(pre, inner, post, width) {
		return pre + inner + post
	}

	var sb strings.Builder
	// no blank first line for an empty preamble
	if pre != "" {
		sb.WriteString(pre)
		sb.WriteString("\n")
	}
	if inner != "" {
		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			if line != "" {
				sb.WriteString(indentUnit)
				sb.WriteString(line)
			}
			if i == len(lines)-1 {
				sb.WriteString(n.ChildPostfix)
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(post)
	return sb.String()
}

func fitsInline(pre, inner, post string, width int) bool {
	if strings.Contains(inner, "\n") {
		return false
	}
	if strings.Contains(pre, "{") && inner != "" {
		return false
	}
	return runewidth.StringWidth(pre)+runewidth.StringWidth(inner)+runewidth.StringWidth(post) <= width
}

func (n *Nested) imports() []string {
	out := n.Preamble.imports()
	if n.Child != nil {
		out = append(out, Imports(n.Child)...)
	}
	return out
}
