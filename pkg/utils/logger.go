package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "seat-booking.log"

// InitLogger writes to stdout and to a rotated seat-booking.log under dir.
func InitLogger(dir string, debug bool) (*zap.Logger, error) {
	file, err := rotatingFile(dir)
	if err != nil {
		return nil, err
	}
	return newLogger(debug, zapcore.AddSync(file), zapcore.Lock(os.Stdout)), nil
}

// newLogger tees every entry to each sink with one shared encoder.
func newLogger(debug bool, sinks ...zapcore.WriteSyncer) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	enc := logEncoder(debug)
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(enc, sink, level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// logEncoder is JSON in production and console text in debug.
func logEncoder(debug bool) zapcore.Encoder {
	if debug {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(ec)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(ec)
}

func rotatingFile(dir string) (*lumberjack.Logger, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}, nil
}
