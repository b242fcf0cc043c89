// Package output provides utilities for creating termenv.Output with a consistent
// color profile across the CLI and the function runtime.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile to use for human-facing output.
// NO_COLOR and the function runtime (whose logs land in a log store, not a terminal)
// both force Ascii. Otherwise, the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
