// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"

	"github.com/unc-network/unc-cli/pkg/types"
)

// ErrNonInteractive is returned by every NonInteractivePrompter method.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter is the Prompter used without a terminal. Commands
// check IsInteractive first and report missing flags, so reaching it means a
// value had no flag to come from.
type NonInteractivePrompter struct{}

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (*NonInteractivePrompter) fail(question string) error {
	return fmt.Errorf("%w: %q (unset %s or run on a TTY)", ErrNonInteractive, question, EnvNonInteractive)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureList(promptStr string, _ []string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureString(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureURL(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureAccountID(promptStr string, _ []string) (types.AccountID, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CapturePublicKey(promptStr string) (types.PublicKey, error) {
	return types.PublicKey{}, p.fail(promptStr)
}

var _ Prompter = (*NonInteractivePrompter)(nil)
