// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/types"
)

// Prompter is a testify mock of prompts.Prompter.
type Prompter struct {
	mock.Mock
}

var _ prompts.Prompter = (*Prompter)(nil)

func (m *Prompter) CaptureYesNo(promptStr string) (bool, error) {
	args := m.Called(promptStr)
	return args.Bool(0), args.Error(1)
}

func (m *Prompter) CaptureList(promptStr string, options []string) (string, error) {
	args := m.Called(promptStr, options)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureString(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureURL(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureAccountID(promptStr string, suggestions []string) (types.AccountID, error) {
	args := m.Called(promptStr, suggestions)
	return args.Get(0).(types.AccountID), args.Error(1)
}

func (m *Prompter) CapturePublicKey(promptStr string) (types.PublicKey, error) {
	args := m.Called(promptStr)
	return args.Get(0).(types.PublicKey), args.Error(1)
}
