package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  Symbol
	}{
		{"a::b::Name", Symbol{Qualifier: []string{"a", "b"}, Name: "Name"}},
		{"std::rc::Rc", Symbol{Qualifier: []string{"std", "rc"}, Name: "Rc"}},
		{"Bare", Symbol{Name: "Bare"}},
		{"super::*", Symbol{Qualifier: []string{"super"}, Name: "*"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, Rust.Join(got))
		})
	}
}

func TestFormat_GroupsAndSorts(t *testing.T) {
	got := Format([]string{"std::cell::RefCell", "std::rc::Rc", "std::cell::Cell"})
	assert.Equal(t, "use std::cell::{Cell, RefCell};\nuse std::rc::Rc;", got)
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "", Format([]string{"", "  "}))
}

func TestGroup_Dedup(t *testing.T) {
	a := "crate::tao::Tao"
	b := "crate::node_wrappers::FinalNode"

	assert.Equal(t, Group([]string{a, b}), Group([]string{a, a, b}))
	assert.Equal(t, Group([]string{a, b}), Group([]string{b, a}))
	assert.Equal(t, []string{"crate::node_wrappers::FinalNode", "crate::tao::Tao"}, Group([]string{b, a, b}))
}

func TestGroup_LowercaseNamesFirst(t *testing.T) {
	got := Group([]string{
		"crate::tao::form::FormTrait",
		"crate::tao::form::self",
		"crate::tao::form::Form",
		"crate::tao::form::archetype",
	})
	assert.Equal(t, []string{"crate::tao::form::{archetype, self, Form, FormTrait}"}, got)
}

func TestGroup_RelativeFirst(t *testing.T) {
	got := Group([]string{
		"std::rc::Rc",
		"super::*",
		"crate::tao::Tao",
		"super::parent::Parent",
	})
	assert.Equal(t, []string{
		"super::*",
		"super::parent::Parent",
		"crate::tao::Tao",
		"std::rc::Rc",
	}, got)
}

func TestGroup_BareNames(t *testing.T) {
	got := Group([]string{"Foo", "bar", "Foo"})
	assert.Equal(t, []string{"bar", "Foo"}, got)
}

func TestGroup_InvertedCaseOrder(t *testing.T) {
	// Plain byte order would put "Zeta" first, case-insensitive order would
	// interleave "alpha"/"Alpha"; the inverted key puts all lowercase first.
	got := Group([]string{"Zeta::X", "alpha::X", "Alpha::X", "beta::X"})
	assert.Equal(t, []string{"alpha::X", "beta::X", "Alpha::X", "Zeta::X"}, got)
}

func TestGroup_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"std::cell::RefCell", "std::rc::Rc", "std::cell::Cell"},
		{"super::*", "crate::tao::Tao", "crate::tao::form::Form", "crate::tao::form::FormTrait"},
		{"Bare", "std::fmt::Debug", "std::fmt::Formatter", "std::fmt::Result"},
	}

	for _, in := range inputs {
		once := Group(in)
		assert.Equal(t, once, Group(once))
	}
}

func TestInvertedCaseKey(t *testing.T) {
	assert.Equal(t, "STD::CELL::{cELL}", InvertedCaseKey("std::cell::{Cell}"))
	assert.Equal(t, "", InvertedCaseKey(""))
	assert.Equal(t, "123_*", InvertedCaseKey("123_*"))
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name      string
		qualified string
		alias     string
		want      string
	}{
		{"no alias", "crate::tao::Tao", "", "crate::tao::Tao"},
		{"alias replaces placeholder", "crate::tao::Tao", "zamm_yin", "zamm_yin::tao::Tao"},
		{"only leading segment", "std::crate::X", "zamm_yin", "std::crate::X"},
		{"prefix of another crate name", "crates_io::X", "zamm_yin", "crates_io::X"},
		{"bare placeholder", "crate", "zamm_yin", "zamm_yin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.qualified, tt.alias))
		})
	}
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, Dedup([]string{"b", "a", "b", "a"}))
	assert.Empty(t, Dedup(nil))
}

func TestCustomTable(t *testing.T) {
	py := Table{Separator: ".", Keyword: "import", RelativePrefix: ""}
	got := py.Group([]string{"os.path", "os.sep", "sys"})
	require.Len(t, got, 2)
	assert.Equal(t, "os.{path, sep}", got[0])
	assert.Equal(t, "sys", got[1])
	assert.Equal(t, "a.b.c", py.Qualify("a", "b", "c"))
}
