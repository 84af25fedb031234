// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// MissingOpt is a required value a command did not receive.
type MissingOpt struct {
	Flag   string // "--network", or "<account-id>" for positional arguments
	Env    string // UNC_NETWORK
	Prompt string // question asked when interactive
	Note   string
}

// MissingError lists every missing option at once so a script can be fixed
// in one go.
func MissingError(cmd string, missing []MissingOpt) error {
	if len(missing) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("missing required options:\n")
	for _, m := range missing {
		b.WriteString("  " + m.Flag)
		if m.Env != "" {
			fmt.Fprintf(&b, " (or %s)", m.Env)
		}
		if m.Note != "" {
			fmt.Fprintf(&b, " - %s", m.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nrun '%s --help' to see all options", cmd)
	if !IsInteractive() {
		b.WriteString("\nor run on a TTY to be prompted interactively")
	}
	return errors.New(b.String())
}

// Validator collects the required string options of a command and fills the
// empty ones from prompts, or fails with MissingError when prompting is off.
//
//	err := prompts.NewValidator(cmd.CommandPath()).
//		Require(&name, prompts.MissingOpt{Flag: "--connection-name", Prompt: "What is the name of the connection?"}).
//		Resolve(func(m prompts.MissingOpt) (string, error) { return app.Prompt.CaptureString(m.Prompt) })
type Validator struct {
	cmd     string
	missing []MissingOpt
	targets []*string
}

func NewValidator(cmd string) *Validator {
	return &Validator{cmd: cmd}
}

func (v *Validator) Require(target *string, opt MissingOpt) *Validator {
	if *target == "" {
		v.missing = append(v.missing, opt)
		v.targets = append(v.targets, target)
	}
	return v
}

// Resolve asks ask for each missing option in declaration order.
func (v *Validator) Resolve(ask func(MissingOpt) (string, error)) error {
	if len(v.missing) == 0 {
		return nil
	}
	if !IsInteractive() {
		return MissingError(v.cmd, v.missing)
	}
	for i, m := range v.missing {
		val, err := ask(m)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", m.Flag, err)
		}
		*v.targets[i] = val
	}
	return nil
}
