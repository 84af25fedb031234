// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/unc-network/unc-cli/pkg/types"
)

const (
	methodQuery          = "query"
	methodValidators     = "validators"
	methodGenesisConfig  = "EXPERIMENTAL_genesis_config"
	methodProtocolConfig = "EXPERIMENTAL_protocol_config"
)

// response kinds, identified by the fields a result must carry
var (
	kindAccount        = responseKind{"view_account", []string{"amount", "storage_usage"}}
	kindAccessKey      = responseKind{"view_access_key", []string{"nonce", "permission"}}
	kindAccessKeyList  = responseKind{"view_access_key_list", []string{"keys"}}
	kindCallResult     = responseKind{"call_function", []string{"result"}}
	kindValidators     = responseKind{"validators", []string{"current_validators", "next_validators"}}
	kindGenesisConfig  = responseKind{"genesis_config", []string{"protocol_version", "num_block_producer_seats"}}
	kindProtocolConfig = responseKind{"protocol_config", []string{"protocol_version", "runtime_config"}}
)

type responseKind struct {
	name   string
	fields []string
}

// decode checks that result is of kind k and unmarshals it into out.
func (k responseKind) decode(method string, result json.RawMessage, out any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(result, &fields); err != nil {
		return fmt.Errorf("%w: %s: expected %s object", ErrUnexpectedResponse, method, k.name)
	}
	for _, f := range k.fields {
		if _, ok := fields[f]; !ok {
			return fmt.Errorf("%w: %s: expected %s, missing %q", ErrUnexpectedResponse, method, k.name, f)
		}
	}
	if err := json.Unmarshal(result, out); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("cannot decode %s: %w", k.name, err)}
	}
	return nil
}

func (c *Client) query(ctx context.Context, requestType string, ref BlockReference, params map[string]any) (json.RawMessage, error) {
	params["request_type"] = requestType
	ref.addTo(params)
	return c.call(ctx, methodQuery, params)
}

func (c *Client) ViewAccount(ctx context.Context, accountID types.AccountID, ref BlockReference) (*AccountView, error) {
	result, err := c.query(ctx, kindAccount.name, ref, map[string]any{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	var view AccountView
	if err := kindAccount.decode(methodQuery, result, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) ViewAccessKey(ctx context.Context, accountID types.AccountID, publicKey types.PublicKey, ref BlockReference) (*AccessKeyView, error) {
	result, err := c.query(ctx, kindAccessKey.name, ref, map[string]any{
		"account_id": accountID,
		"public_key": publicKey.String(),
	})
	if err != nil {
		return nil, err
	}
	var view AccessKeyView
	if err := kindAccessKey.decode(methodQuery, result, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) ViewAccessKeyList(ctx context.Context, accountID types.AccountID, ref BlockReference) (*AccessKeyList, error) {
	result, err := c.query(ctx, kindAccessKeyList.name, ref, map[string]any{"account_id": accountID})
	if err != nil {
		return nil, err
	}
	var list AccessKeyList
	if err := kindAccessKeyList.decode(methodQuery, result, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CallFunction runs a view method of the contract deployed on accountID.
// A contract that panics is reported as a CONTRACT_EXECUTION_ERROR handler error.
func (c *Client) CallFunction(ctx context.Context, accountID types.AccountID, method string, args []byte, ref BlockReference) (*CallResult, error) {
	if args == nil {
		args = []byte{}
	}
	result, err := c.query(ctx, kindCallResult.name, ref, map[string]any{
		"account_id":  accountID,
		"method_name": method,
		"args_base64": base64.StdEncoding.EncodeToString(args),
	})
	if err != nil {
		return nil, err
	}
	var wire callResultWire
	if json.Unmarshal(result, &wire) == nil && wire.Error != "" {
		return nil, &ServerError{
			Method:  methodQuery,
			Kind:    HandlerError,
			Cause:   CauseContractExecutionError,
			Message: wire.Error,
		}
	}
	if err := kindCallResult.decode(methodQuery, result, &wire); err != nil {
		return nil, err
	}
	out := &CallResult{
		Result:      make([]byte, len(wire.Result)),
		Logs:        wire.Logs,
		BlockHeight: wire.BlockHeight,
		BlockHash:   wire.BlockHash,
	}
	for i, b := range wire.Result {
		if b < 0 || b > 0xff {
			return nil, &TransportError{Method: methodQuery, Err: fmt.Errorf("result byte %d out of range: %d", i, b)}
		}
		out.Result[i] = byte(b)
	}
	return out, nil
}

func (c *Client) ValidatorInfo(ctx context.Context, epoch EpochReference) (*EpochValidatorInfo, error) {
	result, err := c.call(ctx, methodValidators, epoch.params())
	if err != nil {
		return nil, err
	}
	var info EpochValidatorInfo
	if err := kindValidators.decode(methodValidators, result, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GenesisConfig(ctx context.Context) (*GenesisConfig, error) {
	result, err := c.call(ctx, methodGenesisConfig, []any{})
	if err != nil {
		return nil, err
	}
	var cfg GenesisConfig
	if err := kindGenesisConfig.decode(methodGenesisConfig, result, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) ProtocolConfig(ctx context.Context, ref BlockReference) (*ProtocolConfig, error) {
	params := map[string]any{}
	ref.addTo(params)
	result, err := c.call(ctx, methodProtocolConfig, params)
	if err != nil {
		return nil, err
	}
	var cfg ProtocolConfig
	if err := kindProtocolConfig.decode(methodProtocolConfig, result, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CallView calls a view method with JSON encoded args and decodes its JSON result.
func CallView[T any](ctx context.Context, c Caller, accountID types.AccountID, method string, args any, ref BlockReference) (T, error) {
	var out T
	var raw []byte
	if args != nil {
		var err error
		if raw, err = json.Marshal(args); err != nil {
			return out, fmt.Errorf("failed to encode args of %s: %w", method, err)
		}
	}
	res, err := c.CallFunction(ctx, accountID, method, raw, ref)
	if err != nil {
		return out, err
	}
	if err := res.ParseJSON(&out); err != nil {
		return out, fmt.Errorf("%s.%s: %w", accountID, method, err)
	}
	return out, nil
}
