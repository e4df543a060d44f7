// Package logger provides structured logging using Zap.
package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	base  *zap.Logger
	once  sync.Once
)

// Options tunes the global logger.
type Options struct {
	// Env selects the encoder: "production" is JSON, anything else is console.
	Env string
	// Debug lowers the level to debug.
	Debug bool
	// File, when set, redirects output to that path instead of stderr. The
	// terminal UI owns the screen, so the interactive shell always sets it.
	File string
}

// Init initializes the global logger for the given environment.
// For "production", it uses a JSON encoder. For all other environments,
// it uses a human-readable console encoder.
func Init(env string) {
	InitWithOptions(Options{Env: env})
}

// InitWithOptions initializes the global logger once.
func InitWithOptions(opts Options) {
	once.Do(func() {
		var cfg zap.Config
		if opts.Env == "production" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
		}

		if opts.Debug {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		if opts.File != "" {
			cfg.OutputPaths = []string{opts.File}
			cfg.ErrorOutputPaths = []string{opts.File}
		}

		var err error
		base, err = cfg.Build()
		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// StdLog returns a standard library logger writing to the global logger at
// info level. gorm's SQL echo writes through it.
func StdLog() *log.Logger {
	Get()
	return zap.NewStdLog(base)
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
