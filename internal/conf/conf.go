// Package conf holds the read-only settings the validation engine and
// the diagnosis subsystem consume. A Config is frozen after
// construction; nothing in the engine ever writes to it.
package conf

import (
	"fmt"
	"strings"
)

// Mode selects how container elements are visited.
type Mode uint8

const (
	// ModeExhaustive checks every element of every container.
	ModeExhaustive Mode = iota
	// ModeSampled checks a bounded random sample per container. The
	// seed drawn for a call is reused by the diagnosis replay so the
	// reported element is the one that actually failed.
	ModeSampled
)

func (m Mode) String() string {
	switch m {
	case ModeExhaustive:
		return "exhaustive"
	case ModeSampled:
		return "sampled"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode converts a flag or manifest string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exhaustive":
		return ModeExhaustive, nil
	case "sampled", "sample":
		return ModeSampled, nil
	default:
		return ModeExhaustive, fmt.Errorf("unknown check mode %q (must be exhaustive or sampled)", s)
	}
}

// Config carries the engine settings.
type Config struct {
	// Mode selects exhaustive or sampled container checking.
	Mode Mode
	// SampleSize bounds how many elements a sampled check visits per
	// container.
	SampleSize int
	// MaxDepth bounds recursion through nested containers and
	// specifications.
	MaxDepth int
	// ReprLimit truncates value previews embedded in explanations, in
	// runes.
	ReprLimit int
}

// Default returns the settings used when no manifest or flags override
// them.
func Default() *Config {
	return &Config{
		Mode:       ModeExhaustive,
		SampleSize: 16,
		MaxDepth:   64,
		ReprLimit:  64,
	}
}
