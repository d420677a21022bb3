package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger instance. It discards everything until InitLogger is called.
var Log = zap.NewNop()

// InitLogger initializes the logger with the appropriate configuration
// based on NF_ENV (development or production).
func InitLogger() {
	env := os.Getenv("NF_ENV")
	if env == "" {
		env = "development"
	}

	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// stack traces would drown the dashboard in the terminal
		config.DisableStacktrace = true
	}
	if lvl := os.Getenv("NF_LOG_LEVEL"); lvl != "" {
		if l, err := zapcore.ParseLevel(lvl); err == nil {
			config.Level = zap.NewAtomicLevelAt(l)
		}
	}

	logger, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = logger
}

func Info(msg string, fields ...zapcore.Field)  { Log.Info(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { Log.Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { Log.Debug(msg, fields...) }

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
