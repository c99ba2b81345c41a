package logger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "JSON output mode", jsonOutput: true, verbosity: VerbosityInfo},
		{name: "Console output mode", jsonOutput: false, verbosity: VerbosityUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() {
				Logger = zap.NewNop().Sugar()
				JSONOutput = false
			})

			require.NoError(t, Initialize(tt.jsonOutput, tt.verbosity))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{9, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv)", LevelName(5))
	assert.Equal(t, "Unknown", LevelName(-2))
	assert.True(t, ShouldLogTrace(3))
	assert.False(t, ShouldLogTrace(2))
}

func TestFieldsFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, FieldsFromContext(ctx))

	ctx = WithSession(ctx, "s-1")
	ctx = WithConcept(ctx, "Relation")
	ctx = WithComponent(ctx, "pipeline")

	assert.Equal(t, []interface{}{
		FieldSession, "s-1",
		FieldConcept, "Relation",
		FieldComponent, "pipeline",
	}, FieldsFromContext(ctx))

	withExtra := With(WithSession(context.Background(), "s-2"), FieldFile, "tao.rs")
	assert.Equal(t, []interface{}{FieldSession, "s-2", FieldFile, "tao.rs"}, withExtra)
}

func TestMinimalEncoderKeepsAllFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.color = false
	enc.AddString(FieldSession, "abc")

	entry := zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC),
		LoggerName: "pipeline",
		Message:    "file rendered",
	}

	buf, err := enc.EncodeEntry(entry, []zapcore.Field{
		zap.String(FieldFile, "tao/relation/mod.rs"),
		zap.Int(FieldBytes, 512),
		zap.Bool("own_module", true),
		zap.Error(errors.New("boom")),
	})
	require.NoError(t, err)
	line := buf.String()

	assert.True(t, strings.HasPrefix(line, "13:04:05 WRN [pipeline] file rendered"), line)
	for _, want := range []string{
		"session=abc",
		"file=tao/relation/mod.rs",
		"bytes=512",
		"own_module=true",
		"error=boom",
	} {
		assert.Contains(t, line, want)
	}
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestMinimalEncoderCloneIsolatesContext(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString("a", "1")

	clone := enc.Clone().(*minimalEncoder)
	clone.AddString("b", "2")

	assert.Len(t, enc.Fields, 1)
	assert.Len(t, clone.Fields, 2)
}
