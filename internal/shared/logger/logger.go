package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zap.Logger to provide structured logging
type Logger struct {
	*zap.Logger
}

// Options controls where and how much the logger writes
type Options struct {
	// Environment selects the console encoding: "production" logs JSON,
	// anything else logs human-readable colored lines
	Environment string

	// Level is the minimum level written (debug, info, warn, error)
	Level string

	// Dir enables rotating log files when non-empty
	Dir string

	// Console receives console output. Defaults to os.Stderr so that
	// standard output carries only program output.
	Console io.Writer
}

// New creates a new logger instance based on the environment
func New(opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var consoleEncoder zapcore.Encoder
	if opts.Environment == "production" {
		// Production config (structured JSON logs)
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		// Development config (human-readable colored logs)
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleEncoderConfig)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), level)

	if opts.Dir != "" {
		fileCore, err := newFileCore(opts.Dir, level)
		if err != nil {
			return nil, err
		}
		core = zapcore.NewTee(core, fileCore)
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		Logger: logger,
	}, nil
}

// newFileCore routes logs to rotating files: everything at or above level
// into info.log, errors additionally into error.log
func newFileCore(dir string, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create a JSON encoder config for files (without colors)
	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	infoWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "info.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	errorWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "error.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	return zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			zapcore.AddSync(infoWriter),
			level,
		),
		zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			zapcore.AddSync(errorWriter),
			zapcore.ErrorLevel,
		),
	), nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a named logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		Logger: l.Logger.Named(name),
	}
}

// With creates a child logger with the given fields
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{
		Logger: l.Logger.With(fields...),
	}
}

// Sugar returns a sugared logger
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.Logger.Sugar()
}
