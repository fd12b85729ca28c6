package docxfill

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logOff is above every zap level, so nothing gets through.
const logOff = zapcore.FatalLevel + 1

type Fields map[string]interface{}

// Logger is a thin leveled logger over zap's sugared logger. Derived
// loggers created with WithField share the writer and the level.
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	// Initialize global logger with default settings
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		level := parseLogLevel(config.LogLevel)
		globalLogger = NewLogger(os.Stderr, level)
	})
}

func init() {
	initGlobalLogger()
}

func parseLogLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "off":
		return logOff
	default:
		return zapcore.InfoLevel
	}
}

func NewLogger(w io.Writer, level zapcore.Level) *Logger {
	if w == nil {
		w = io.Discard
	}

	atom := zap.NewAtomicLevelAt(level)
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), atom)

	return &Logger{
		sugar: zap.New(core).Sugar(),
		level: atom,
	}
}

func (l *Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

func (l *Logger) IsDebugMode() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		sugar: l.sugar.With(key, value),
		level: l.level,
	}
}

func (l *Logger) WithFields(fields Fields) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		sugar: l.sugar.With(args...),
		level: l.level,
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Global logging functions
func SetLogger(logger *Logger) {
	globalLogger = logger
}

func GetLogger() *Logger {
	initGlobalLogger()
	return globalLogger
}

func Debug(format string, args ...interface{}) {
	initGlobalLogger()
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	initGlobalLogger()
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	initGlobalLogger()
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	initGlobalLogger()
	globalLogger.Error(format, args...)
}

func WithField(key string, value interface{}) *Logger {
	initGlobalLogger()
	return globalLogger.WithField(key, value)
}

func WithFields(fields Fields) *Logger {
	initGlobalLogger()
	return globalLogger.WithFields(fields)
}

// UpdateLoggerFromConfig updates the global logger based on the current global configuration
func UpdateLoggerFromConfig() {
	initGlobalLogger()
	globalLogger.SetLevel(parseLogLevel(GetGlobalConfig().LogLevel))
}
