// Package imports turns a flat multiset of fully-qualified symbol references
// into a deduplicated, grouped and deterministically ordered import block.
//
//	Format([]string{"std::cell::RefCell", "std::rc::Rc", "std::cell::Cell"})
//
// renders
//
//	use std::cell::{Cell, RefCell};
//	use std::rc::Rc;
package imports

import (
	"sort"
	"strings"
	"unicode"
)

// PackagePlaceholder is the leading path segment that stands for "the package
// being generated". Files may substitute an alias for it (see Substitute).
const PackagePlaceholder = "crate"

// Table holds the syntax an import block is rendered with.
type Table struct {
	// Separator joins path segments, e.g. "::"
	Separator string
	// Keyword starts every rendered line, e.g. "use"
	Keyword string
	// RelativePrefix marks imports relative to the parent scope; those sort first
	RelativePrefix string
	// Terminator ends every rendered line, e.g. ";"
	Terminator string
}

// Rust is the table used by the package-level helpers.
var Rust = Table{
	Separator:      "::",
	Keyword:        "use",
	RelativePrefix: "super",
	Terminator:     ";",
}

// Symbol is a qualified reference split into its path and final name.
type Symbol struct {
	Qualifier []string
	Name      string
}

// Split splits a qualified reference at its last separator. A reference with
// no separator is a bare name with an empty qualifier.
func (t Table) Split(qualified string) Symbol {
	idx := strings.LastIndex(qualified, t.Separator)
	if idx < 0 {
		return Symbol{Name: qualified}
	}
	return Symbol{
		Qualifier: strings.Split(qualified[:idx], t.Separator),
		Name:      qualified[idx+len(t.Separator):],
	}
}

// Join is the inverse of Split.
func (t Table) Join(s Symbol) string {
	if len(s.Qualifier) == 0 {
		return s.Name
	}
	return strings.Join(s.Qualifier, t.Separator) + t.Separator + s.Name
}

// Qualify joins path segments into one qualified reference.
func (t Table) Qualify(parts ...string) string {
	return strings.Join(parts, t.Separator)
}

// Group collapses symbols sharing a qualifier into one grouped reference and
// returns the references in output order: relative imports first, then the
// rest, each partition sorted by InvertedCaseKey. Running Group on its own
// output returns it unchanged.
func (t Table) Group(symbols []string) []string {
	byQualifier := make(map[string]map[string]struct{})
	for _, s := range symbols {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sym := t.Split(s)
		q := strings.Join(sym.Qualifier, t.Separator)
		if byQualifier[q] == nil {
			byQualifier[q] = make(map[string]struct{})
		}
		byQualifier[q][sym.Name] = struct{}{}
	}

	var lines []string
	for q, names := range byQualifier {
		if q == "" {
			// bare names have nothing to share
			for name := range names {
				lines = append(lines, name)
			}
			continue
		}
		if line := t.groupLine(q, names); line != "" {
			lines = append(lines, line)
		}
	}

	var relative, rest []string
	for _, line := range lines {
		if t.isRelative(line) {
			relative = append(relative, line)
		} else {
			rest = append(rest, line)
		}
	}

	sortInvertedCase(relative)
	sortInvertedCase(rest)
	return append(relative, rest...)
}

func (t Table) groupLine(qualifier string, names map[string]struct{}) string {
	var lower, upper []string
	for name := range names {
		if name == "" {
			continue
		}
		if startsLower(name) {
			lower = append(lower, name)
		} else {
			upper = append(upper, name)
		}
	}
	sort.Strings(lower)
	sort.Strings(upper)
	ordered := append(lower, upper...)

	var tail string
	switch len(ordered) {
	case 0:
		return ""
	case 1:
		tail = ordered[0]
	default:
		tail = "{" + strings.Join(ordered, ", ") + "}"
	}
	return qualifier + t.Separator + tail
}

func (t Table) isRelative(line string) bool {
	return line == t.RelativePrefix || strings.HasPrefix(line, t.RelativePrefix+t.Separator)
}

// Format groups symbols and renders one import statement per line.
func (t Table) Format(symbols []string) string {
	grouped := t.Group(symbols)
	lines := make([]string, len(grouped))
	for i, g := range grouped {
		lines[i] = t.Keyword + " " + g + t.Terminator
	}
	return strings.Join(lines, "\n")
}

// Substitute replaces a leading PackagePlaceholder segment with alias.
// An empty alias leaves the reference untouched.
func (t Table) Substitute(qualified, alias string) string {
	if alias == "" || alias == PackagePlaceholder {
		return qualified
	}
	if qualified == PackagePlaceholder {
		return alias
	}
	if strings.HasPrefix(qualified, PackagePlaceholder+t.Separator) {
		return alias + strings.TrimPrefix(qualified, PackagePlaceholder)
	}
	return qualified
}

// InvertedCaseKey swaps the case of every rune. Sorting by it orders
// lowercase paths ahead of uppercase ones at the first differing rune while
// keeping same-case runes in byte order.
func InvertedCaseKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

func sortInvertedCase(lines []string) {
	sort.SliceStable(lines, func(i, j int) bool {
		ki, kj := InvertedCaseKey(lines[i]), InvertedCaseKey(lines[j])
		if ki != kj {
			return ki < kj
		}
		return lines[i] < lines[j]
	})
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

// Dedup returns symbols with duplicates removed, first occurrence kept.
func Dedup(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Split splits with the Rust table.
func Split(qualified string) Symbol { return Rust.Split(qualified) }

// Qualify joins with the Rust table.
func Qualify(parts ...string) string { return Rust.Qualify(parts...) }

// Group groups with the Rust table.
func Group(symbols []string) []string { return Rust.Group(symbols) }

// Format formats with the Rust table.
func Format(symbols []string) string { return Rust.Format(symbols) }

// Substitute substitutes with the Rust table.
func Substitute(qualified, alias string) string { return Rust.Substitute(qualified, alias) }
