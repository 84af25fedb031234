// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import "github.com/unc-network/unc-cli/pkg/types"

// Map applies f to every element of input.
func Map[T, U any](input []T, f func(T) U) []U {
	output := make([]U, 0, len(input))
	for _, e := range input {
		output = append(output, f(e))
	}
	return output
}

// AccountIDsToStrings is used to feed account ids to prompts as suggestions.
func AccountIDsToStrings(ids []types.AccountID) []string {
	return Map(ids, types.AccountID.String)
}
