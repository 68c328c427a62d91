package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	l *zap.SugaredLogger
}

func NewZapLogger(l *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{l: l}
}

// NewDefault builds a logger writing to stderr so log lines never interleave
// with rendered views on stdout. jsonOutput switches to the machine-readable
// production encoder.
func NewDefault(jsonOutput bool) (*ZapLogger, error) {
	var core zapcore.Core
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		core = zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(os.Stderr), zap.InfoLevel)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zap.InfoLevel)
	}
	return NewZapLogger(zap.New(core).Sugar()), nil
}

// NewNop returns a logger that discards everything. Handy default for tests
// and for components constructed before logging is configured.
func NewNop() *ZapLogger {
	return NewZapLogger(zap.NewNop().Sugar())
}

func (z *ZapLogger) Info(_ context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(_ context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(_ context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}
