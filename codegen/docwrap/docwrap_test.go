package docwrap

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWrap_Short(t *testing.T) {
	assert.Equal(t, "/// A short description.", Wrap("A short description.", 0, LineDoc))
}

func TestWrap_Indented(t *testing.T) {
	assert.Equal(t, "    //! Module docs.", Wrap("Module docs.", 4, ModuleDoc))
}

func TestWrap_Empty(t *testing.T) {
	assert.Equal(t, "", Wrap("", 0, LineDoc))
	assert.Equal(t, "", Wrap(" \n\n ", 4, LineDoc))
}

func TestWrap_ParagraphBreaks(t *testing.T) {
	got := Wrap("First paragraph.\n\nSecond paragraph.", 0, LineDoc)
	want := "/// First paragraph.\n///\n/// Second paragraph."
	assert.Equal(t, want, got)
	for _, line := range strings.Split(got, "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line, "no trailing whitespace")
	}
}

func TestWrap_TrailingNewlinesTrimmed(t *testing.T) {
	assert.Equal(t, "/// Ends here.", Wrap("Ends here.\n\n\n", 0, LineDoc))
}

func TestWrapWidth_RespectsLimit(t *testing.T) {
	text := "The knowledge base stores every concept as a node, and every relation between " +
		"concepts as a typed edge that can itself carry attributes."

	for _, max := range []int{30, 40, 60, 80} {
		got := WrapWidth(text, 4, LineDoc, max)
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, runewidth.StringWidth(line), max, "line %q", line)
			assert.True(t, strings.HasPrefix(line, "    /// "), "line %q", line)
		}
		// No words lost or reordered
		var words []string
		for _, line := range strings.Split(got, "\n") {
			words = append(words, strings.Fields(strings.TrimPrefix(line, "    ///"))...)
		}
		assert.Equal(t, strings.Fields(text), words)
	}
}

func TestWrapWidth_Exact(t *testing.T) {
	// width = 20 - 0 - 3 - 1 = 16
	got := WrapWidth("aaaa bbbb cccc dddd eeee", 0, LineDoc, 20)
	assert.Equal(t, "/// aaaa bbbb cccc\n/// dddd eeee", got)
}

func TestWrapWidth_LongWordKeptWhole(t *testing.T) {
	url := "https://example.com/a/very/long/path/that/does/not/fit"
	got := WrapWidth("See "+url+" for details.", 0, Comment, 30)
	assert.Equal(t, "// See\n// "+url+"\n// for details.", got)
}

func TestWrapWidth_NarrowClampsToOneColumn(t *testing.T) {
	got := WrapWidth("a b", 10, LineDoc, 5)
	assert.Equal(t, "          /// a\n          /// b", got)
}

func TestWrapWidth_WideRunes(t *testing.T) {
	// Each CJK rune is two columns wide; width = 14 - 0 - 3 - 1 = 10
	got := WrapWidth("概念 知識 関係 属性", 0, LineDoc, 14)
	assert.Equal(t, "/// 概念 知識\n/// 関係 属性", got)
}

func TestFill_KeepsLeadingIndent(t *testing.T) {
	lines := Fill("Items:\n  - first item\n  - second", 80)
	assert.Equal(t, []string{"Items:", "  - first item", "  - second"}, lines)
}

func TestFill_Blank(t *testing.T) {
	assert.Nil(t, Fill("", 10))
	assert.Equal(t, []string{"a", "", "b"}, Fill("a\n   \nb", 10))
}
