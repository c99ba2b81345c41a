package rust

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/teranos/ontogen/codegen"
	"github.com/teranos/ontogen/codegen/ontology"
)

// =============================================================================
// Test helpers
// =============================================================================

func loadArchive(t *testing.T, path string) (*ontology.Ontology, map[string]string) {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	require.NoError(t, err)

	var o *ontology.Ontology
	want := make(map[string]string)
	for _, f := range ar.Files {
		if f.Name == "ontology.yaml" {
			o, err = ontology.Parse(f.Data, ontology.FormatYAML)
			require.NoError(t, err)
			continue
		}
		want[f.Name] = string(f.Data)
	}
	require.NotNil(t, o, "archive %s has no ontology.yaml", path)
	return o, want
}

func generate(t *testing.T, o *ontology.Ontology, opts codegen.Options) map[string]string {
	t.Helper()
	files, err := codegen.Run(context.Background(), codegen.NewSession(o, opts), NewGenerator())
	require.NoError(t, err)

	got := make(map[string]string, len(files))
	for _, f := range files {
		got[f.Path] = f.Content
	}
	return got
}

// =============================================================================
// Golden files
// =============================================================================

func TestGenerate_Golden(t *testing.T) {
	o, want := loadArchive(t, "testdata/yin.txtar")
	got := generate(t, o, codegen.DefaultOptions())

	var paths []string
	for p := range got {
		paths = append(paths, p)
	}
	assert.ElementsMatch(t, []string{
		"tao/form/data/mod.rs",
		"tao/form/data/string_concept.rs",
		"tao/relation/attribute/mod.rs",
		"tao/relation/attribute/owner.rs",
		"tao/relation/flag.rs",
		"tao/relation/mod.rs",
	}, paths)

	for path, content := range want {
		t.Run(path, func(t *testing.T) {
			if diff := cmp.Diff(content, got[path]); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
			}
		})
	}
}

// =============================================================================
// Options
// =============================================================================

func TestGenerate_WithoutTestsOrHeader(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	opts := codegen.DefaultOptions()
	opts.Tests = false
	opts.Header = false

	flag := generate(t, o, opts)["tao/relation/flag.rs"]
	assert.True(t, strings.HasPrefix(flag, "use std::fmt;\n"), flag)
	assert.NotContains(t, flag, "#[cfg(test)]")
	assert.NotContains(t, flag, "initialize_kb")
}

func TestGenerate_SourceVersionInBanner(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	opts := codegen.DefaultOptions()
	opts.Source = &codegen.SourceInfo{
		Hash:         "0123456789abcdef",
		LastModified: time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC),
	}

	flag := generate(t, o, opts)["tao/relation/flag.rs"]
	assert.True(t, strings.HasPrefix(flag, strings.Join([]string{
		Banner,
		"// Source version: 0123456",
		"// Source last modified: 2025-12-25",
		"",
		"use std::fmt;",
	}, "\n")), flag)
}

func TestGenerate_PackageAliasOverride(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	opts := codegen.DefaultOptions()
	opts.PackageAlias = "crate"

	flag := generate(t, o, opts)["tao/relation/flag.rs"]
	assert.Contains(t, flag, "use crate::tao::relation::Relation;")
	assert.NotContains(t, flag, "zamm_yin")
}

func TestGenerate_NarrowDocWidth(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	opts := codegen.DefaultOptions()
	opts.DocWidth = 24

	flag := generate(t, o, opts)["tao/relation/flag.rs"]
	assert.Contains(t, flag, "/// Represents a boolean\n/// property of a form.\n")
}

func TestGenerate_DocWiderThanLine(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	o.MustLookup("Flag").Doc = strings.Repeat("alpha ", 30) + "beta gamma delta"
	opts := codegen.DefaultOptions()
	opts.DocWidth = 100

	flag := generate(t, o, opts)["tao/relation/flag.rs"]
	twelve := "/// " + strings.TrimSpace(strings.Repeat("alpha ", 12))
	assert.Contains(t, flag, strings.Join([]string{
		twelve,
		twelve,
		"/// " + strings.Repeat("alpha ", 6) + "beta gamma delta",
		"#[derive(Copy, Clone, Eq, PartialEq, Hash)]",
	}, "\n"))
}

func TestGenerate_DocNarrowerThanLine(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	opts := codegen.DefaultOptions()
	opts.DocWidth = 40

	for path, content := range generate(t, o, opts) {
		for _, line := range strings.Split(content, "\n") {
			// top-level items; nested docs are indented on top of the cap
			if strings.HasPrefix(line, "///") {
				assert.LessOrEqual(t, len(line), 40, "%s: %q", path, line)
			}
		}
	}
}

func TestGenerate_OwnModuleDeclaresMembers(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	attr := generate(t, o, codegen.DefaultOptions())["tao/relation/attribute/mod.rs"]

	assert.Contains(t, attr, "mod owner;\n\npub use owner::Owner;\n")
	assert.Contains(t, attr, "impl AttributeTrait for Attribute {\n    type OwnerForm = Tao;\n    type ValueForm = Tao;\n}")
	// a file never imports what it defines
	assert.NotContains(t, attr, "relation::attribute::{Attribute")
	assert.Contains(t, attr, "use zamm_yin::tao::relation::attribute::AttributeTrait;")
}

// =============================================================================
// Contract checks
// =============================================================================

func TestGenerateFile_RejectsExternal(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	s := codegen.NewSession(o, codegen.DefaultOptions())
	s.AssignIDs()

	_, err := NewGenerator().GenerateFile(s, o.MustLookup("Tao"))
	require.Error(t, err)
}

func TestGenerateFile_RequiresAssignedIDs(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	s := codegen.NewSession(o, codegen.DefaultOptions())

	_, err := NewGenerator().GenerateFile(s, o.MustLookup("Flag"))
	require.Error(t, err)
}

func TestGenerateIndex_RejectsOwnedModule(t *testing.T) {
	o, _ := loadArchive(t, "testdata/yin.txtar")
	s := codegen.NewSession(o, codegen.DefaultOptions())

	owned := s.ModuleOf(o.MustLookup("Relation"))
	require.NotNil(t, owned)
	_, err := NewGenerator().GenerateIndex(s, owned)
	require.Error(t, err)
}

func TestGeneratorIdentity(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "rust", g.Language())
	assert.Equal(t, "rs", g.FileExtension())
}

func TestPrimitive(t *testing.T) {
	assert.Equal(t, "String", primitive(&ontology.Concept{Primitive: "String"}).Name)
	assert.Empty(t, primitive(&ontology.Concept{Primitive: "String"}).Import)

	p := primitive(&ontology.Concept{Primitive: "std::path::PathBuf"})
	assert.Equal(t, "PathBuf", p.Name)
	assert.Equal(t, "std::path::PathBuf", p.Import)
}
