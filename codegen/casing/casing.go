// Package casing splits identifiers into words and re-renders them in the
// three casings the generator needs: CamelCase for type names, snake_case for
// modules and files, kebab-case for package-style names.
//
// Style is detected from the input: any "_" means snake_case, any "-" means
// kebab-case, anything else is parsed as camel case with acronym handling:
//
//	DNSResolver -> [DNS Resolver]
//	ResolveDNS  -> [Resolve DNS]
//	RStudio     -> [R Studio]
//	anRc        -> [an Rc]
package casing

import (
	"strings"
	"unicode"
)

// Name is an identifier broken into its words, casing preserved.
type Name struct {
	Words []string
}

// Parse detects the style of s and splits it into words.
// The empty string yields a Name with no words.
func Parse(s string) Name {
	switch {
	case strings.Contains(s, "_"):
		return ParseSnake(s)
	case strings.Contains(s, "-"):
		return ParseKebab(s)
	default:
		return ParseCamel(s)
	}
}

// ParseSnake splits snake_case, dropping empty segments ("a__b" -> [a b]).
func ParseSnake(s string) Name {
	return splitOn(s, "_")
}

// ParseKebab splits kebab-case, dropping empty segments.
func ParseKebab(s string) Name {
	return splitOn(s, "-")
}

func splitOn(s, sep string) Name {
	var words []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			words = append(words, part)
		}
	}
	return Name{Words: words}
}

// ParseCamel splits camel case at case changes.
//
// A leading lowercase run is one word. After that every word starts with an
// uppercase rune: a single capital extends through the lowercase run that
// follows it, while an uppercase run of two or more is an acronym whose last
// rune already belongs to the next word. A run reaching the end of the string
// stays whole. Runes that are not uppercase (digits included) count as
// lowercase.
func ParseCamel(s string) Name {
	runes := []rune(s)
	n := len(runes)
	var words []string

	i := 0
	if n > 0 && !unicode.IsUpper(runes[0]) {
		i = lowerRunEnd(runes, 0)
		words = append(words, string(runes[:i]))
	}

	for i < n {
		j := upperRunEnd(runes, i)
		switch {
		case j == n:
			words = append(words, string(runes[i:]))
			i = n
		case j-i >= 2:
			words = append(words, string(runes[i:j-1]))
			i = j - 1
		default:
			k := lowerRunEnd(runes, j)
			words = append(words, string(runes[i:k]))
			i = k
		}
	}

	return Name{Words: words}
}

func upperRunEnd(runes []rune, from int) int {
	for from < len(runes) && unicode.IsUpper(runes[from]) {
		from++
	}
	return from
}

func lowerRunEnd(runes []rune, from int) int {
	for from < len(runes) && !unicode.IsUpper(runes[from]) {
		from++
	}
	return from
}

// ToCamel renders Name1Name2: each word's first rune upper-cased, the rest untouched.
func (n Name) ToCamel() string {
	var sb strings.Builder
	for _, w := range n.Words {
		runes := []rune(w)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		sb.WriteString(string(runes[1:]))
	}
	return sb.String()
}

// ToSnake renders name1_name2.
func (n Name) ToSnake() string {
	return n.joinLower("_")
}

// ToKebab renders name1-name2.
func (n Name) ToKebab() string {
	return n.joinLower("-")
}

func (n Name) joinLower(sep string) string {
	lower := make([]string, len(n.Words))
	for i, w := range n.Words {
		lower[i] = strings.ToLower(w)
	}
	return strings.Join(lower, sep)
}

// Camel is shorthand for Parse(s).ToCamel().
func Camel(s string) string { return Parse(s).ToCamel() }

// Snake is shorthand for Parse(s).ToSnake().
func Snake(s string) string { return Parse(s).ToSnake() }

// Kebab is shorthand for Parse(s).ToKebab().
func Kebab(s string) string { return Parse(s).ToKebab() }

