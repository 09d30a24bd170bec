// Package logging sets up the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"twiddler-tools/internal/diagnostic"
)

var (
	// Logger is the global logger. It discards everything until Initialize
	// is called.
	Logger = zap.NewNop().Sugar()
	// JSONOutput records whether the logger emits JSON.
	JSONOutput bool
)

// Verbosity levels for the -v flag count.
const (
	VerbosityUser  = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: + run summary details
	VerbosityDebug = 2 // -vv: + config and per-file details
)

// VerbosityToLevel maps the -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Initialize sets up the global logger writing to stderr.
func Initialize(jsonOutput bool, verbosity int) error {
	l, err := New(jsonOutput, VerbosityToLevel(verbosity), zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}

	Logger = l
	JSONOutput = jsonOutput

	return nil
}

// New builds a logger. JSON output uses zap's production encoder; the
// console form is terse and meant for an operator reading a terminal.
func New(jsonOutput bool, level zapcore.Level, out zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	var enc zapcore.Encoder

	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, out, level)).Sugar(), nil
}

// Diagnostics logs every diagnostic at a level matching its severity.
func Diagnostics(log *zap.SugaredLogger, d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		kv := []any{"code", diag.Code}
		if diag.Subject != "" {
			kv = append(kv, "entry", diag.Subject)
		}

		if diag.Detail != "" {
			kv = append(kv, "detail", diag.Detail)
		}

		switch diag.Severity {
		case diagnostic.SeverityError:
			log.Errorw(diag.Message, kv...)
		case diagnostic.SeverityWarning:
			log.Warnw(diag.Message, kv...)
		default:
			log.Infow(diag.Message, kv...)
		}
	}
}
