// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	Plaintext OutputFormat = "plaintext"
	JSON      OutputFormat = "json"
	YAML      OutputFormat = "yaml"
)

var OutputFormats = []OutputFormat{Plaintext, JSON, YAML}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case Plaintext, JSON, YAML:
		return f, nil
	case "":
		return Plaintext, nil
	}
	return "", fmt.Errorf("unknown output format %q, expected one of %v", s, OutputFormats)
}

// Render writes v as JSON or YAML, or calls plain for the plaintext format.
func Render(w io.Writer, format OutputFormat, v any, plain func(io.Writer) error) error {
	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return plain(w)
	}
}
