package casing

import (
	"reflect"
	"testing"
)

func TestParseCamel(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"DNSResolver", []string{"DNS", "Resolver"}},
		{"ResolveDNS", []string{"Resolve", "DNS"}},
		{"RStudio", []string{"R", "Studio"}},
		{"anRc", []string{"an", "Rc"}},
		{"camelCase", []string{"camel", "Case"}},
		{"PascalCase", []string{"Pascal", "Case"}},
		{"HTTPSConnection", []string{"HTTPS", "Connection"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"ABC", []string{"ABC"}},
		{"Tao", []string{"Tao"}},
		{"tao", []string{"tao"}},
		{"aB", []string{"a", "B"}},
		{"Form2Data", []string{"Form2", "Data"}},
		{"IsAFlag", []string{"Is", "A", "Flag"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCamel(tt.input).Words
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCamel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDetectsStyle(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"owner_archetype", []string{"owner", "archetype"}},
		{"__leading__and_double__", []string{"leading", "and", "double"}},
		{"yin-yang", []string{"yin", "yang"}},
		{"--x--y", []string{"x", "y"}},
		{"OwnerArchetype", []string{"Owner", "Archetype"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input).Words
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderers(t *testing.T) {
	tests := []struct {
		input string
		camel string
		snake string
		kebab string
	}{
		{"DNSResolver", "DNSResolver", "dns_resolver", "dns-resolver"},
		{"owner_archetype", "OwnerArchetype", "owner_archetype", "owner-archetype"},
		{"yin-yang", "YinYang", "yin_yang", "yin-yang"},
		{"anRc", "AnRc", "an_rc", "an-rc"},
		{"iPhone", "IPhone", "i_phone", "i-phone"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := Parse(tt.input)
			if got := n.ToCamel(); got != tt.camel {
				t.Errorf("ToCamel() = %q, want %q", got, tt.camel)
			}
			if got := n.ToSnake(); got != tt.snake {
				t.Errorf("ToSnake() = %q, want %q", got, tt.snake)
			}
			if got := n.ToKebab(); got != tt.kebab {
				t.Errorf("ToKebab() = %q, want %q", got, tt.kebab)
			}
		})
	}
}

func TestShorthands(t *testing.T) {
	if got := Camel("string_concept"); got != "StringConcept" {
		t.Errorf("Camel() = %q", got)
	}
	if got := Snake("StringConcept"); got != "string_concept" {
		t.Errorf("Snake() = %q", got)
	}
	if got := Kebab("StringConcept"); got != "string-concept" {
		t.Errorf("Kebab() = %q", got)
	}
}

// Segmentation survives snake -> camel -> snake for identifiers without a
// leading lowercase word.
func TestRoundTripPreservesSegmentation(t *testing.T) {
	inputs := []string{"DNSResolver", "ResolveDNS", "RStudio", "HTTPSConnection", "OwnerArchetype", "Tao", "IsAFlag"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first := Parse(in)
			snake := first.ToSnake()
			camel := Parse(snake).ToCamel()
			second := Parse(camel)

			if len(second.Words) != len(first.Words) {
				t.Fatalf("round trip %q -> %q -> %q changed word count: %q vs %q",
					in, snake, camel, first.Words, second.Words)
			}
			if got := second.ToSnake(); got != snake {
				t.Errorf("round trip snake = %q, want %q", got, snake)
			}
		})
	}
}
