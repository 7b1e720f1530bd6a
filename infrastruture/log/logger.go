// Package log provides the colour-tagged structured logger used by every
// component of the server.
package log

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrNilWriter = errors.New("log: nil writer")

// Logger writes levelled console lines tagged with a coloured component name.
type Logger struct {
	zap *zap.Logger
}

// New creates a logger named prefix that writes to w. color is an ANSI
// escape sequence applied to the name.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(color + "[" + name + "]" + colorReset)
	}
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zap.InfoLevel),
	)

	return &Logger{zap: zap.New(core).Named(prefix)}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

const colorReset = "\033[0m"

func (l *Logger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.zap.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.zap.Error(msg)
}

// With returns a child logger that adds fields to every line.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...)}
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
