package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger shared by the CLI and the shell session.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes console-formatted logs to stderr. Verbose mode logs at
// debug level, otherwise only warnings and errors are shown so log lines do
// not interleave with shell output.
func NewLogger(verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return NewLoggerWithLevel(level)
}

// NewLoggerWithLevel is NewLogger with an explicit level, used when the
// config file sets one.
func NewLoggerWithLevel(level zapcore.Level) *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return &Logger{zap.New(core).Sugar()}
}

// ParseLevel maps a config string such as "debug" or "warn" to a level.
func ParseLevel(text string) (zapcore.Level, error) {
	return zapcore.ParseLevel(text)
}

// Nop discards everything. Tests and library callers without a logger use it.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
