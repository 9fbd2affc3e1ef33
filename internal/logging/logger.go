// Package logging provides a shared logger and log utilities to be used in
// all internal packages.
package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	L *zap.Logger        = zap.L()
	S *zap.SugaredLogger = zap.S()
)

// Initialize replaces the package-level logger with one writing at verbosity
// v. Output is a human-readable console encoding when attached to a
// terminal, and JSON otherwise.
func Initialize(v int) {
	atom := zap.NewAtomicLevelAt(zapcore.Level(-v))

	var (
		encoder zapcore.Encoder
		writer  zapcore.WriteSyncer
	)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		writer = zapcore.Lock(os.Stderr)
		encoder = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "message",

			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalColorLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.ISO8601TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		})
	} else {
		writer = zapcore.Lock(os.Stdout)
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, writer, atom)

	L = zap.New(core, zap.AddCaller())
	S = L.Sugar()
}

// StandardErrorLog returns a *log.Logger that writes to L at error level.
// Useful for http.Server.ErrorLog and other stdlib integrations.
func StandardErrorLog() *log.Logger {
	errorLog, err := zap.NewStdLogAt(L, zapcore.ErrorLevel)
	if err != nil {
		return nil
	}

	return errorLog
}

func Debugf(template string, args ...interface{}) {
	S.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	S.Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	S.Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	S.Errorf(template, args...)
}
