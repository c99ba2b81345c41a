package codegen

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/ontogen/codegen/fragment"
	"github.com/teranos/ontogen/codegen/ontology"
	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

// stubGenerator renders each concept as a one-line file.
type stubGenerator struct {
	failOn string
	calls  atomic.Int32
}

func (g *stubGenerator) Language() string      { return "stub" }
func (g *stubGenerator) FileExtension() string { return "rs" }

func (g *stubGenerator) GenerateFile(s *Session, c *ontology.Concept) (*fragment.File, error) {
	g.calls.Add(1)
	if c.Name == g.failOn {
		return nil, errors.Newf("cannot generate %s", c.Name)
	}
	id, err := s.TypeID(c)
	if err != nil {
		return nil, err
	}
	f := fragment.NewFile()
	f.Append(fragment.Text(c.Name + " = " + strconv.Itoa(id)))
	return f, nil
}

func (g *stubGenerator) GenerateIndex(s *Session, m *ontology.ModuleIndex) (*fragment.File, error) {
	g.calls.Add(1)
	f := fragment.NewFile()
	f.Append(fragment.Text("index " + m.Name()))
	return f, nil
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewSession(loadYin(t), DefaultOptions())
	files, err := Run(context.Background(), s, &stubGenerator{})
	require.NoError(t, err)

	var paths []string
	content := make(map[string]string)
	for _, f := range files {
		paths = append(paths, f.Path)
		content[f.Path] = f.Content
	}
	assert.Equal(t, []string{
		"tao/form/data/mod.rs",
		"tao/form/data/string_concept.rs",
		"tao/relation/attribute/mod.rs",
		"tao/relation/attribute/owner.rs",
		"tao/relation/flag.rs",
		"tao/relation/mod.rs",
	}, paths)

	assert.Equal(t, "Relation = 20\n", content["tao/relation/mod.rs"])
	assert.Equal(t, "StringConcept = 24\n", content["tao/form/data/string_concept.rs"])
	assert.Equal(t, "index data\n", content["tao/form/data/mod.rs"])
}

func TestRun_LogsUnderCodegenName(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = prev })

	_, err := Run(context.Background(), NewSession(loadYin(t), DefaultOptions()), &stubGenerator{})
	require.NoError(t, err)

	entries := logs.All()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "codegen", e.LoggerName, e.Message)
	}
	assert.Equal(t, 1, logs.FilterMessage("Generation complete").Len())
	assert.Equal(t, 6, logs.FilterMessage("Rendered file").Len())
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	defer goleak.VerifyNone(t)

	var outputs [][]GeneratedFile
	for _, workers := range []int{1, 3, 16} {
		opts := DefaultOptions()
		opts.Workers = workers
		files, err := Run(context.Background(), NewSession(loadYin(t), opts), &stubGenerator{})
		require.NoError(t, err)
		outputs = append(outputs, files)
	}
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[0], outputs[2])
}

func TestRun_GeneratorFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	opts := DefaultOptions()
	opts.Workers = 1
	_, err := Run(context.Background(), NewSession(loadYin(t), opts), &stubGenerator{failOn: "Flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tao/relation/flag.rs")
	assert.Contains(t, err.Error(), "cannot generate Flag")
}

func TestRun_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &stubGenerator{}
	_, err := Run(ctx, NewSession(loadYin(t), DefaultOptions()), gen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, gen.calls.Load())
}

func TestRun_DuplicatePaths(t *testing.T) {
	o, err := ontology.Parse([]byte(`
package: dup
concepts:
  - name: Tao
    external: true
    import: crate::Tao
  - name: Flag
    parent: Tao
    module: x
  - name: Mod
    parent: Tao
    module: x
`), ontology.FormatYAML)
	require.NoError(t, err)

	_, err = Run(context.Background(), NewSession(o, DefaultOptions()), &stubGenerator{})
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "explicit module")
}
