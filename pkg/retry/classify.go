// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package retry

import (
	"context"
	"errors"

	"github.com/unc-network/unc-cli/pkg/rpc"
)

// QueryClassifier classifies rpc errors. Handler errors with one of
// notFoundCauses are KnownNotFound, transport and transient server errors are
// retried, and everything else, including unexpected responses, is Fatal.
func QueryClassifier(notFoundCauses ...string) Classifier {
	return func(err error) Outcome {
		switch {
		case err == nil:
			return Success
		case errors.Is(err, context.Canceled):
			return Fatal
		case rpc.IsHandlerCause(err, notFoundCauses...):
			return KnownNotFound
		case errors.Is(err, rpc.ErrUnexpectedResponse):
			return Fatal
		case rpc.IsTransient(err):
			return TransientFailure
		}
		return Fatal
	}
}
