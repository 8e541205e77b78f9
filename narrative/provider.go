// Package narrative calls an external language model for a qualitative
// reading of a page. It is optional: every failure is returned as an error
// and callers carry on without it.
package narrative

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no provider is configured or ready.
var ErrUnavailable = errors.New("narrative analysis unavailable")

// ErrMalformedResponse is returned when the model's reply cannot be used.
var ErrMalformedResponse = errors.New("malformed narrative response")

// Provider is a language model backend.
type Provider interface {
	// Name returns the provider name for logging.
	Name() string

	// Available reports whether the provider has what it needs to run.
	Available() bool

	// Complete sends a prompt with a system message and returns the reply.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

func firstAvailable(providers []Provider) Provider {
	for _, p := range providers {
		if p != nil && p.Available() {
			return p
		}
	}
	return nil
}
