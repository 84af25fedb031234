// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package retry runs queries whose transient failures are retried on the
// decision of a Policy: a yes/no question to the user, or a fixed budget.
package retry

import (
	"context"
	"errors"
	"fmt"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/prompts"
)

const TryAgainPrompt = "Do you want to try again?"

// Policy decides whether a transient failure is retried. attempt is the
// number of attempts made so far, starting at 1.
type Policy interface {
	ShouldRetry(ctx context.Context, attempt int, err error) (bool, error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(ctx context.Context, attempt int, err error) (bool, error)

func (f PolicyFunc) ShouldRetry(ctx context.Context, attempt int, err error) (bool, error) {
	return f(ctx, attempt, err)
}

// InteractivePolicy asks the user after every transient failure.
// A failed or cancelled prompt counts as "No".
type InteractivePolicy struct {
	Prompt prompts.Prompter
}

func (p InteractivePolicy) ShouldRetry(ctx context.Context, _ int, _ error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	yes, err := p.Prompt.CaptureYesNo(TryAgainPrompt)
	if err != nil {
		return false, nil
	}
	return yes, nil
}

// FixedPolicy allows MaxAttempts attempts in total.
type FixedPolicy struct {
	MaxAttempts int
}

func (p FixedPolicy) ShouldRetry(ctx context.Context, attempt int, _ error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constants.DefaultRetryAttempts
	}
	return attempt < maxAttempts, nil
}

// PolicyForMode returns the interactive policy when prompting is possible,
// and a fixed policy of attempts otherwise.
func PolicyForMode(prompter prompts.Prompter, interactive bool, attempts int) Policy {
	if interactive {
		return InteractivePolicy{Prompt: prompter}
	}
	return FixedPolicy{MaxAttempts: attempts}
}

// Outcome classifies the result of one attempt.
type Outcome int

const (
	Success Outcome = iota
	KnownNotFound
	TransientFailure
	// Fatal errors are returned as is without consulting the policy.
	Fatal
)

// Classifier maps an attempt's error to an Outcome. It is not called for a nil error.
type Classifier func(err error) Outcome

// GivenUpError is returned when the policy declined to retry a transient failure.
type GivenUpError struct {
	Attempts int
	Last     error
}

func (e *GivenUpError) Error() string {
	return fmt.Sprintf("gave up after %d attempt(s): %v", e.Attempts, e.Last)
}

func (e *GivenUpError) Unwrap() error {
	return e.Last
}

// Options holds optional hooks for Do.
type Options struct {
	// OnTransient runs after every transient failure, before the policy is asked.
	OnTransient func(attempt int, err error)
}

// Do runs fn until it succeeds, fails with a non-transient error, or the policy gives up.
func Do[T any](ctx context.Context, policy Policy, classify Classifier, fn func(context.Context) (T, error), opts ...Options) (T, error) {
	var (
		zero T
		o    Options
	)
	if len(opts) > 0 {
		o = opts[0]
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		switch classify(err) {
		case Success:
			return v, nil
		case KnownNotFound, Fatal:
			return zero, err
		}
		if o.OnTransient != nil {
			o.OnTransient(attempt, err)
		}
		again, perr := policy.ShouldRetry(ctx, attempt, err)
		if perr != nil {
			return zero, errors.Join(err, perr)
		}
		if !again {
			return zero, &GivenUpError{Attempts: attempt, Last: err}
		}
	}
}
