// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonInteractivePrompterFails(t *testing.T) {
	p := NewNonInteractivePrompter()

	calls := map[string]func() error{
		"yes/no":     func() error { _, err := p.CaptureYesNo("Do you want to try again?"); return err },
		"list":       func() error { _, err := p.CaptureList("Choose", []string{"a", "b"}); return err },
		"string":     func() error { _, err := p.CaptureString("Enter name"); return err },
		"url":        func() error { _, err := p.CaptureURL("RPC URL"); return err },
		"account id": func() error { _, err := p.CaptureAccountID("Account ID", nil); return err },
		"public key": func() error { _, err := p.CapturePublicKey("Public key"); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.ErrorIs(t, err, ErrNonInteractive)
			require.Contains(t, err.Error(), EnvNonInteractive)
		})
	}
}

func TestNonInteractivePrompterQuotesQuestion(t *testing.T) {
	_, err := NewNonInteractivePrompter().CaptureYesNo("Do you want to try again?")
	require.ErrorContains(t, err, `"Do you want to try again?"`)
}
