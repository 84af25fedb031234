// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedResponse is returned when the node answers a query with a
// response of a different kind than requested. It is never retried.
var ErrUnexpectedResponse = errors.New("unexpected server response")

// Handler error causes reported by the node for query requests.
const (
	CauseUnknownAccount         = "UNKNOWN_ACCOUNT"
	CauseUnknownAccessKey       = "UNKNOWN_ACCESS_KEY"
	CauseNoContractCode         = "NO_CONTRACT_CODE"
	CauseContractExecutionError = "CONTRACT_EXECUTION_ERROR"
	CauseUnknownBlock           = "UNKNOWN_BLOCK"
	CauseUnknownEpoch           = "UNKNOWN_EPOCH"
	CauseUnavailableShard       = "UNAVAILABLE_SHARD"
	CauseGarbageCollectedBlock  = "GARBAGE_COLLECTED_BLOCK"
	CauseNoSyncedBlocks         = "NO_SYNCED_BLOCKS"
)

const (
	errorNameHandler           = "HANDLER_ERROR"
	errorNameRequestValidation = "REQUEST_VALIDATION_ERROR"
	errorNameInternal          = "INTERNAL_ERROR"
)

// TransportError means the request or its response never made it intact:
// connection failures, timeouts and undecodable bodies.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc %s: transport error: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type ServerErrorKind int

const (
	HandlerError ServerErrorKind = iota
	RequestValidation
	Internal
	RateLimited
	Unauthorized
	Unexpected
)

func (k ServerErrorKind) String() string {
	switch k {
	case HandlerError:
		return "handler error"
	case RequestValidation:
		return "request validation error"
	case Internal:
		return "internal error"
	case RateLimited:
		return "rate limited"
	case Unauthorized:
		return "unauthorized"
	case Unexpected:
		return "unexpected error"
	}
	return fmt.Sprintf("ServerErrorKind(%d)", int(k))
}

// ServerError is a rejection reported by the node.
type ServerError struct {
	Method     string
	Kind       ServerErrorKind
	StatusCode int
	// Cause is the handler cause name, e.g. UNKNOWN_ACCOUNT. Empty for other kinds.
	Cause   string
	Message string
	Info    json.RawMessage
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("rpc %s: server error: %s", e.Method, e.Kind)
	if e.Cause != "" {
		msg += " " + e.Cause
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// IsTransient reports whether err may go away by sending the same request again.
func IsTransient(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		switch serverErr.Kind {
		case RateLimited, Internal, Unexpected:
			return true
		}
	}
	return false
}

// IsHandlerCause reports whether err is a handler error with one of causes.
func IsHandlerCause(err error, causes ...string) bool {
	var serverErr *ServerError
	if !errors.As(err, &serverErr) || serverErr.Kind != HandlerError {
		return false
	}
	for _, c := range causes {
		if serverErr.Cause == c {
			return true
		}
	}
	return false
}

type rpcErrorCause struct {
	Name string          `json:"name"`
	Info json.RawMessage `json:"info,omitempty"`
}

type rpcErrorBody struct {
	Name    string          `json:"name"`
	Cause   *rpcErrorCause  `json:"cause,omitempty"`
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (b *rpcErrorBody) toServerError(method string, status int) *ServerError {
	e := &ServerError{
		Method:     method,
		StatusCode: status,
		Message:    b.Message,
	}
	if b.Cause != nil {
		e.Cause = b.Cause.Name
		e.Info = b.Cause.Info
	}
	if len(b.Data) > 0 {
		var data string
		if err := json.Unmarshal(b.Data, &data); err == nil && data != "" {
			e.Message = data
		}
	}
	switch b.Name {
	case errorNameHandler:
		e.Kind = HandlerError
	case errorNameRequestValidation:
		e.Kind = RequestValidation
	case errorNameInternal:
		e.Kind = Internal
	default:
		e.Kind = Unexpected
	}
	return e
}
