// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/unc-network/unc-cli/pkg/types"
)

func validateURL(input string) error {
	u, err := url.ParseRequestURI(input)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

func validateAccountID(input string) error {
	return types.ValidateAccountID(input)
}

func validatePublicKey(input string) error {
	_, err := types.ParsePublicKey(input)
	return err
}
