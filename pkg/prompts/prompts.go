// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/unc-network/unc-cli/pkg/types"
)

const (
	Yes = "Yes"
	No  = "No"

	// EnterOther is appended to suggestion lists to allow typing a value.
	EnterOther = "Enter a different value"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

// Prompter asks the user for the values a command is missing.
type Prompter interface {
	CaptureYesNo(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
	CaptureString(promptStr string) (string, error)
	CaptureURL(promptStr string) (string, error)
	CaptureAccountID(promptStr string, suggestions []string) (types.AccountID, error)
	CapturePublicKey(promptStr string) (types.PublicKey, error)
}

type realPrompter struct{}

// NewPrompter returns a Prompter reading from the terminal.
func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: []string{Yes, No},
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("string cannot be empty")
			}
			return nil
		},
	}
	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureURL(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateURL,
	}
	return promptUIRunner(prompt)
}

// CaptureAccountID offers suggestions (most recently used first) with a
// fuzzy search and falls back to free text entry.
func (*realPrompter) CaptureAccountID(promptStr string, suggestions []string) (types.AccountID, error) {
	if len(suggestions) > 0 {
		items := append(append([]string{}, suggestions...), EnterOther)
		sel := promptui.Select{
			Label: promptStr,
			Items: items,
			Size:  10,
			Searcher: func(input string, index int) bool {
				return index == len(items)-1 || strings.Contains(items[index], strings.ToLower(strings.TrimSpace(input)))
			},
		}
		_, choice, err := promptUISelectRunner(sel)
		if err != nil {
			return "", err
		}
		if choice != EnterOther {
			return types.ParseAccountID(choice)
		}
	}
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateAccountID,
	}
	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}
	return types.ParseAccountID(str)
}

func (*realPrompter) CapturePublicKey(promptStr string) (types.PublicKey, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validatePublicKey,
	}
	str, err := promptUIRunner(prompt)
	if err != nil {
		return types.PublicKey{}, err
	}
	return types.ParsePublicKey(str)
}
