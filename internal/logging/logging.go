// Package logging builds the stderr logger used by the interm CLI.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/muesli/termenv"
)

// PrettyLogger returns a tint-backed logger writing to dest. Color is
// dropped when profile cannot render it.
func PrettyLogger(dest io.Writer, profile termenv.Profile, level slog.Level) *slog.Logger {
	opts := &tint.Options{
		TimeFormat: time.TimeOnly,
		NoColor:    profile == termenv.Ascii,
		Level:      level,
	}
	return slog.New(tint.NewHandler(dest, opts))
}

// New returns a logger for dest, detecting its color profile.
func New(dest io.Writer, level slog.Level) *slog.Logger {
	return PrettyLogger(dest, termenv.NewOutput(dest).EnvColorProfile(), level)
}
