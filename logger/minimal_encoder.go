package logger

import (
	"fmt"
	"sort"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorDim   = "\x1b[38;5;245m"
	colorWarn  = "\x1b[38;5;179m"
	colorError = "\x1b[38;5;167m"
	colorDebug = "\x1b[38;5;109m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder renders "15:04:05 INF [component] message key=value" lines.
// Context fields added through With() are kept in the embedded map encoder and
// printed in key order ahead of the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		color:            true,
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone, color: enc.color}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufferPool.Get()

	enc.paint(buf, colorDim, ent.Time.Format("15:04:05"))
	buf.AppendByte(' ')
	enc.paint(buf, levelColor(ent.Level), levelAbbrev(ent.Level))
	if ent.LoggerName != "" {
		buf.AppendString(" [")
		buf.AppendString(ent.LoggerName)
		buf.AppendByte(']')
	}
	buf.AppendByte(' ')
	buf.AppendString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc.appendField(buf, k, fmt.Sprint(enc.Fields[k]))
	}
	for _, f := range fields {
		enc.appendField(buf, f.Key, fieldValue(f))
	}

	buf.AppendString(zapcore.DefaultLineEnding)
	return buf, nil
}

func (enc *minimalEncoder) appendField(buf *buffer.Buffer, key, value string) {
	buf.AppendByte(' ')
	enc.paint(buf, colorDim, key+"=")
	buf.AppendString(value)
}

func (enc *minimalEncoder) paint(buf *buffer.Buffer, color, s string) {
	if enc.color && color != "" {
		buf.AppendString(color)
		buf.AppendString(s)
		buf.AppendString(colorReset)
		return
	}
	buf.AppendString(s)
}

// fieldValue renders a single zap field through a throwaway map encoder so
// every field type (errors, durations, arrays) gets zap's own formatting.
func fieldValue(f zapcore.Field) string {
	m := zapcore.NewMapObjectEncoder()
	f.AddTo(m)
	if v, ok := m.Fields[f.Key]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

func levelAbbrev(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "DBG"
	case zapcore.InfoLevel:
		return "INF"
	case zapcore.WarnLevel:
		return "WRN"
	default:
		return "ERR"
	}
}

func levelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorDebug
	case zapcore.InfoLevel:
		return ""
	case zapcore.WarnLevel:
		return colorWarn
	default:
		return colorError
	}
}
