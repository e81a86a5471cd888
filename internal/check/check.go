// Package check is the compiled-check collaborator: a fast boolean
// walker that validates a value against a specification, and — when
// the walk fails — hands the subject to the diagnosis subsystem to
// produce a precise explanation.
package check

import (
	"fmt"
	"math/rand"

	"attest/internal/cause"
	"attest/internal/conf"
	"attest/internal/spec"
)

// Check validates subject against the raw specification. It returns
// nil when the subject satisfies the specification, a *Violation when
// it does not, and a different (internal) error when the specification
// itself is broken or diagnosis cannot explain a detected failure.
// origin names the callable or document the check belongs to; label is
// the human-readable prefix for error text.
func Check(subject any, raw spec.Raw, origin, label string, cfg *conf.Config) error {
	if cfg == nil {
		cfg = conf.Default()
	}
	var seed *uint64
	if cfg.Mode == conf.ModeSampled {
		s := rand.Uint64() //nolint:gosec // sampling, not cryptography
		seed = &s
	}

	ok, err := satisfies(subject, raw, label, cfg, seed, 0)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	ctx, err := cause.New(subject, raw, origin, label, seed, cfg)
	if err != nil {
		return err
	}
	f, err := ctx.Diagnose()
	if err != nil {
		return err
	}
	if !f.Found {
		// The walk said the subject fails; the diagnosis found nothing.
		// The two must never disagree silently.
		return fmt.Errorf("%w: %s failed its check", cause.ErrNoCause, label)
	}
	return &Violation{Origin: origin, Label: label, Cause: f.Text}
}
