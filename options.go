package cubecipher

import (
	"strings"

	"github.com/rs/zerolog"
)

// Option configures a Cube at construction.
type Option func(*cubeOptions)

type cubeOptions struct {
	payload    []string
	payloadSet bool
}

func defaultOptions() *cubeOptions {
	return &cubeOptions{}
}

// WithPayload attaches a payload given as a flat string, one rune per facet.
func WithPayload(payload string) Option {
	return func(o *cubeOptions) {
		o.payload = splitRunes(payload)
		o.payloadSet = true
	}
}

// WithPayloadTokens attaches a payload given as one symbol per facet.
// Symbols are opaque and may contain whitespace or any delimiter.
func WithPayloadTokens(tokens []string) Option {
	return func(o *cubeOptions) {
		o.payload = append([]string(nil), tokens...)
		o.payloadSet = true
	}
}

// WithPayloadDelimited attaches a payload whose symbols are separated by sep.
// Use it when symbols are longer than one rune.
func WithPayloadDelimited(payload, sep string) Option {
	return func(o *cubeOptions) {
		o.payload = strings.Split(payload, sep)
		o.payloadSet = true
	}
}

// SolverOption configures a Solver.
type SolverOption func(*solverConfig)

type solverConfig struct {
	logger        zerolog.Logger
	maxIterations int
	onPhase       func(Phase, int)
}

// DefaultMaxIterations bounds the situations each solver phase may handle
// before the cube is declared unsolvable.
const DefaultMaxIterations = 24

func defaultSolverConfig() *solverConfig {
	return &solverConfig{
		logger:        zerolog.Nop(),
		maxIterations: DefaultMaxIterations,
	}
}

// WithLogger sets the logger for phase transitions (debug level).
// The default discards everything.
func WithLogger(logger zerolog.Logger) SolverOption {
	return func(c *solverConfig) {
		c.logger = logger
	}
}

// WithMaxIterations sets the per-phase iteration budget. Values below the
// default are raised to it, since a smaller budget could reject reachable
// states.
func WithMaxIterations(n int) SolverOption {
	return func(c *solverConfig) {
		if n > DefaultMaxIterations {
			c.maxIterations = n
		}
	}
}

// WithPhaseCallback registers fn to be called after each phase completes,
// with the number of moves recorded so far.
func WithPhaseCallback(fn func(Phase, int)) SolverOption {
	return func(c *solverConfig) {
		c.onPhase = fn
	}
}
