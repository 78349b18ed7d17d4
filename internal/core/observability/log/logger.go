package log

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

var (
	innerLogger          *Logger
	loggerInitializeOnce sync.Once
)

type Logger struct {
	zapLogger *zap.Logger
	level     zap.AtomicLevel
}

// New builds a JSON logger writing to stderr. The first logger built becomes
// the one returned by Provide.
func New(level Level) *Logger {
	logger := build(level)
	loggerInitializeOnce.Do(func() { innerLogger = logger })
	return logger
}

func build(level Level) *Logger {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	config := zap.Config{
		Level:       atomicLevel,
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{zapLogger: zapLogger, level: atomicLevel}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), level: zap.NewAtomicLevelAt(zap.InfoLevel)}
}

// NewWithCore wraps an existing zap core, mostly for tests using zaptest/observer.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{zapLogger: zap.New(core), level: zap.NewAtomicLevelAt(zap.DebugLevel)}
}

// Provide returns the process-wide logger, building an info level one if
// none exists yet.
func Provide() *Logger {
	loggerInitializeOnce.Do(func() { innerLogger = build(LevelInfo) })
	return innerLogger
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.zapLogger.Debug(msg, toZapFields(fields...)...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.zapLogger.Info(msg, toZapFields(fields...)...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.zapLogger.Warn(msg, toZapFields(fields...)...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.zapLogger.Error(msg, toZapFields(fields...)...)
}

func (l *Logger) With(fields ...Field) Log {
	return &Logger{
		zapLogger: l.zapLogger.With(toZapFields(fields...)...),
		level:     l.level,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(toZapLevel(level))
}

func (l *Logger) GetLevel() Level {
	return fromZapLevel(l.level.Level())
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch level {
	case zap.DebugLevel:
		return LevelDebug
	case zap.WarnLevel:
		return LevelWarn
	case zap.ErrorLevel:
		return LevelError
	default:
		return LevelInfo
	}
}

func toZapFields(fields ...Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case BoolType:
			zapFields[i] = zap.Bool(f.Key, f.Value.(bool))
		case DurationType:
			zapFields[i] = zap.Duration(f.Key, f.Value.(time.Duration))
		case Float64Type:
			zapFields[i] = zap.Float64(f.Key, f.Value.(float64))
		case IntType:
			zapFields[i] = zap.Int(f.Key, f.Value.(int))
		case StringType:
			zapFields[i] = zap.String(f.Key, f.Value.(string))
		case Uint64Type:
			zapFields[i] = zap.Uint64(f.Key, f.Value.(uint64))
		case ErrorType:
			zapFields[i] = zap.NamedError(f.Key, f.Value.(error))
		case Vec3Type:
			v := f.Value.(mgl64.Vec3)
			zapFields[i] = zap.Float64s(f.Key, v[:])
		case QuatType:
			q := f.Value.(mgl64.Quat)
			zapFields[i] = zap.Float64s(f.Key, []float64{q.W, q.V[0], q.V[1], q.V[2]})
		default:
			zapFields[i] = zap.Any(f.Key, f.Value)
		}
	}
	return zapFields
}
