// Package logging provides the leveled printf-style logger used by every
// package. It is a thin wrapper over zap's console encoder: INFO/WARN/DEBUG
// go to stdout, ERROR to stderr, and an optional plain-text file sink
// receives everything.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/webpsweep/internal/config"
	"github.com/backmassage/webpsweep/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	zl   *zap.Logger
	log  *zap.SugaredLogger
	ok   *zap.SugaredLogger
	file *os.File
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile for appending. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	var (
		file *os.File
		sink io.Writer
	)
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		file, sink = f, f
	}

	l := build(cfg.Verbose, os.Stdout, os.Stderr, sink, term.Enabled())
	l.file = file
	return l, nil
}

// New returns a logger writing to out (below ERROR) and errOut (ERROR),
// without colors or a file sink. Intended for tests and embedding.
func New(out, errOut io.Writer, verbose bool) *Logger {
	return build(verbose, out, errOut, nil, false)
}

func build(verbose bool, out, errOut, file io.Writer, color bool) *Logger {
	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}
	belowError := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= minLevel && l < zapcore.ErrorLevel
	})
	atError := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel
	})

	console := zapcore.NewConsoleEncoder(encoderConfig(color))
	cores := []zapcore.Core{
		zapcore.NewCore(console, zapcore.AddSync(out), belowError),
		zapcore.NewCore(console, zapcore.AddSync(errOut), atError),
	}
	if file != nil {
		plain := zapcore.NewConsoleEncoder(encoderConfig(false))
		cores = append(cores, zapcore.NewCore(plain, zapcore.AddSync(file), zap.NewAtomicLevelAt(minLevel)))
	}

	zl := zap.New(zapcore.NewTee(cores...))
	return &Logger{
		zl:  zl,
		log: zl.Sugar(),
		ok:  zl.Named("ok").Sugar(),
	}
}

// encoderConfig renders "<ts> [LEVEL] <msg>", with the bracketed level
// colored when color is true.
func encoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      bracketLevel(color),
		EncodeName:       namedLogger(color),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// namedLogger renders the logger name, green when color is true so
// Success lines stand out from plain INFO.
func namedLogger(color bool) zapcore.NameEncoder {
	return func(name string, enc zapcore.PrimitiveArrayEncoder) {
		if color {
			name = term.Green + name + term.NC
		}
		enc.AppendString(name)
	}
}

func bracketLevel(color bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + l.CapitalString() + "]"
		if !color {
			enc.AppendString(label)
			return
		}
		c := term.Blue
		switch l {
		case zapcore.DebugLevel:
			c = term.Cyan
		case zapcore.WarnLevel:
			c = term.Yellow
		case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
			c = term.Red
		}
		enc.AppendString(c + label + term.NC)
	}
}

// Close flushes buffered entries and closes the log file if one was opened.
func (l *Logger) Close() error {
	// Syncing a terminal returns EINVAL on some platforms; only the file
	// sink's error matters.
	_ = l.zl.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at INFO level under the "ok" name so completed work stands
// out in the stream.
func (l *Logger) Success(format string, args ...interface{}) {
	l.ok.Infof(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level; dropped unless the logger was built verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}
