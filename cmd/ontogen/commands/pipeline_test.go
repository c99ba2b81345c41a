package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ontogen/am"
	"github.com/teranos/ontogen/codegen"
)

const yinOntology = "../../../codegen/ontology/testdata/yin.yaml"

func testConfig(t *testing.T) *am.Config {
	t.Helper()
	cfg := am.Default()
	cfg.Output.Dir = t.TempDir()
	cfg.Output.SourceVersion = false
	return cfg
}

func TestOntologyPath(t *testing.T) {
	assert.Equal(t, DefaultOntology, ontologyPath(nil))
	assert.Equal(t, "yin.toml", ontologyPath([]string{"yin.toml"}))
}

func TestRenderWriteCheck(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	o, err := loadOntology(yinOntology)
	require.NoError(t, err)

	files, err := render(ctx, cfg, o, yinOntology)
	require.NoError(t, err)
	require.Len(t, files, 6)

	changed, err := writeOutput(ctx, cfg, files, true)
	require.NoError(t, err)
	assert.Len(t, changed, 6)

	result, err := codegen.CompareDirectories(files, cfg.Output.Dir)
	require.NoError(t, err)
	assert.True(t, result.UpToDate)

	// second run writes nothing
	changed, err = writeOutput(ctx, cfg, files, true)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestWriteOutput_RunsHookOnChange(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Generate.PostHook = "touch hook-ran"

	files := []codegen.GeneratedFile{{Path: "flag.rs", Content: "pub struct Flag;\n"}}
	_, err := writeOutput(ctx, cfg, files, true)
	require.NoError(t, err)

	marker := filepath.Join(cfg.Output.Dir, "hook-ran")
	_, err = os.Stat(marker)
	require.NoError(t, err)

	// unchanged output does not rerun the hook
	require.NoError(t, os.Remove(marker))
	_, err = writeOutput(ctx, cfg, files, true)
	require.NoError(t, err)
	_, err = os.Stat(marker)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadOntology_Missing(t *testing.T) {
	_, err := loadOntology(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
