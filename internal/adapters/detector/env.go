// Package detector inspects the process environment to pick output defaults.
package detector

import (
	"os"

	"go.trai.ch/purge/internal/core/domain"
	"golang.org/x/term"
)

// Environment is where the process is running.
type Environment int

const (
	// EnvTerminal is an interactive terminal.
	EnvTerminal Environment = iota
	// EnvBatch is a CI job or any non-interactive pipe.
	EnvBatch
	// EnvFunction is the serverless function runtime.
	EnvFunction
)

func (e Environment) String() string {
	switch e {
	case EnvFunction:
		return "function"
	case EnvBatch:
		return "batch"
	default:
		return "terminal"
	}
}

// DetectEnvironment returns the environment the process is running in.
// The function runtime wins over everything else; otherwise stderr must be a
// TTY and CI must be unset for the environment to count as interactive.
func DetectEnvironment() Environment {
	if InFunctionRuntime() {
		return EnvFunction
	}

	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return EnvBatch
	}
	return EnvTerminal
}

// InFunctionRuntime reports whether the process was started by the function runtime.
func InFunctionRuntime() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" || os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
}

// ResolveLogFormat applies an explicit format over the environment default.
// Only the function runtime defaults to JSON, so its log store can index fields.
func ResolveLogFormat(env Environment, requested domain.LogFormat) domain.LogFormat {
	switch requested {
	case domain.LogFormatJSON, domain.LogFormatPretty:
		return requested
	}

	if env == EnvFunction {
		return domain.LogFormatJSON
	}
	return domain.LogFormatPretty
}
