// Package logger предоставляет единый интерфейс логирования поверх zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger — интерфейс логгера, используемый всеми слоями приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	Sync() error
}

// Options описывает параметры создания логгера.
type Options struct {
	Level      string // debug | info | warn | error
	Production bool   // JSON-формат вместо консольного
	File       string // путь к файлу логов; пусто, если только stdout
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger создает логгер на основе zap.
// Если указан файл, логи дополнительно пишутся в него с ротацией через lumberjack.
func NewZapLogger(opts Options) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil || opts.Level == "" {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var stdoutEncoder zapcore.Encoder
	if opts.Production {
		stdoutEncoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		devCfg := encoderCfg
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		stdoutEncoder = zapcore.NewConsoleEncoder(devCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(stdoutEncoder, zapcore.AddSync(os.Stdout), level),
	}

	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(rotated), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &zapLogger{sugar: l.Sugar()}
}

// NewNop возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(err error, format string, args ...any) {
	l.sugar.With(zap.Error(err)).Errorf(format, args...)
}

func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}
