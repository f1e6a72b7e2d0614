// Package logging builds the zerolog logger shared by flynn commands.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options selects verbosity. Quiet wins over Verbose.
type Options struct {
	Verbose bool
	Quiet   bool
	NoColor bool
	Out     io.Writer // defaults to os.Stderr
}

// New returns a console logger on stderr. Warnings and errors are shown by
// default, debug output with Verbose, nothing with Quiet.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.WarnLevel
	switch {
	case opts.Quiet:
		level = zerolog.Disabled
	case opts.Verbose:
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    opts.NoColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// WithContext attaches l to ctx for retrieval with zerolog.Ctx.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.WithContext(ctx)
}
