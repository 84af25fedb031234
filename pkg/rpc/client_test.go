// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/types"
)

type capturedRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// newTestClient serves every request with handler and records the decoded requests.
func newTestClient(t *testing.T, handler func(w http.ResponseWriter, req capturedRequest)) (*Client, *[]capturedRequest, *[]http.Header) {
	t.Helper()
	var (
		requests []capturedRequest
		headers  []http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req capturedRequest
		require.NoError(t, json.Unmarshal(body, &req))
		requests = append(requests, req)
		headers = append(headers, r.Header.Clone())
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(config.NetworkConfig{
		ConnectionName: "testnet",
		NetworkName:    "testnet",
		RPCURL:         srv.URL,
		RPCAPIKey:      "api-key",
	}, Options{Timeout: 5 * time.Second, RequestsPerSecond: 1000, Burst: 1000})
	return c, &requests, &headers
}

func writeResult(w http.ResponseWriter, result string) {
	_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"1","result":`+result+`}`)
}

func writeError(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestViewAccount(t *testing.T) {
	require := require.New(t)

	c, requests, headers := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"amount":"1000000000000000000000000","pledging":"0","code_hash":"11111111111111111111111111111111","storage_usage":182,"block_height":17,"block_hash":"abc"}`)
	})

	view, err := c.ViewAccount(context.Background(), "alice.testnet", Final())
	require.NoError(err)
	require.Equal("1000000000000000000000000", view.Amount.String())
	require.Equal(uint64(182), view.StorageUsage)

	require.Len(*requests, 1)
	require.Equal("query", (*requests)[0].Method)
	require.JSONEq(`{"request_type":"view_account","account_id":"alice.testnet","finality":"final"}`, string((*requests)[0].Params))
	require.Equal("api-key", (*headers)[0].Get("x-api-key"))
}

func TestBlockReferenceParams(t *testing.T) {
	require := require.New(t)

	c, requests, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"keys":[]}`)
	})
	_, err := c.ViewAccessKeyList(context.Background(), "alice.testnet", AtHeight(42))
	require.NoError(err)
	_, err = c.ViewAccessKeyList(context.Background(), "alice.testnet", AtHash("9xyz"))
	require.NoError(err)
	_, err = c.ViewAccessKeyList(context.Background(), "alice.testnet", BlockReference{})
	require.NoError(err)

	require.JSONEq(`{"request_type":"view_access_key_list","account_id":"alice.testnet","block_id":42}`, string((*requests)[0].Params))
	require.JSONEq(`{"request_type":"view_access_key_list","account_id":"alice.testnet","block_id":"9xyz"}`, string((*requests)[1].Params))
	require.JSONEq(`{"request_type":"view_access_key_list","account_id":"alice.testnet","finality":"final"}`, string((*requests)[2].Params))
}

func TestEpochBlockReference(t *testing.T) {
	require := require.New(t)

	block, err := LatestEpoch().BlockReference()
	require.NoError(err)
	require.Equal(Final(), block)

	block, err = EpochAtBlock(AtHeight(42)).BlockReference()
	require.NoError(err)
	require.Equal(AtHeight(42), block)

	block, err = EpochAtBlock(AtHash("9xyz")).BlockReference()
	require.NoError(err)
	require.Equal(AtHash("9xyz"), block)

	_, err = EpochByID("4yUe").BlockReference()
	require.ErrorContains(err, "no block reference")
}

func TestViewAccessKeyUnknown(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"1","error":{"name":"HANDLER_ERROR","cause":{"name":"UNKNOWN_ACCESS_KEY","info":{"public_key":"ed25519:x"}},"code":-32000,"message":"Server error","data":"access key ed25519:x does not exist while viewing"}}`)
	})
	pk, err := types.PublicKeyFromBytes(make([]byte, 32))
	require.NoError(err)

	_, err = c.ViewAccessKey(context.Background(), "alice.testnet", pk, Final())
	require.Error(err)

	var serverErr *ServerError
	require.ErrorAs(err, &serverErr)
	require.Equal(HandlerError, serverErr.Kind)
	require.Equal(CauseUnknownAccessKey, serverErr.Cause)
	require.Equal("access key ed25519:x does not exist while viewing", serverErr.Message)
	require.True(IsHandlerCause(err, CauseUnknownAccount, CauseUnknownAccessKey))
	require.False(IsTransient(err))
}

func TestViewAccessKeyPermissions(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"keys":[
			{"public_key":"ed25519:11111111111111111111111111111111","access_key":{"nonce":5,"permission":"FullAccess"}},
			{"public_key":"ed25519:11111111111111111111111111111111","access_key":{"nonce":6,"permission":{"FunctionCall":{"allowance":null,"receiver_id":"app.testnet","method_names":["a"]}}}},
			{"public_key":"ed25519:11111111111111111111111111111111","access_key":{"nonce":7,"permission":{"FunctionCall":{"allowance":"250","receiver_id":"app.testnet","method_names":[]}}}}
		]}`)
	})

	list, err := c.ViewAccessKeyList(context.Background(), "alice.testnet", Final())
	require.NoError(err)
	require.Len(list.Keys, 3)
	require.True(list.Keys[0].AccessKey.Permission.IsFullAccess())
	require.False(list.Keys[1].AccessKey.Permission.IsFullAccess())
	require.True(list.Keys[1].AccessKey.Permission.FunctionCall.Allowance.IsNone())
	require.Equal("250", list.Keys[2].AccessKey.Permission.FunctionCall.Allowance.Unwrap().String())
	require.Equal(uint64(7), list.Keys[2].AccessKey.Nonce)
}

func TestUnexpectedResponseKind(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"nonce":1,"permission":"FullAccess"}`)
	})
	_, err := c.ViewAccount(context.Background(), "alice.testnet", Final())
	require.ErrorIs(err, ErrUnexpectedResponse)
	require.False(IsTransient(err))
}

func TestServerErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		kind      ServerErrorKind
		transient bool
	}{
		{"rate limited", http.StatusTooManyRequests, "slow down", RateLimited, true},
		{"unauthorized", http.StatusUnauthorized, "no key", Unauthorized, false},
		{"forbidden", http.StatusForbidden, "", Unauthorized, false},
		{"internal", http.StatusInternalServerError, `{"jsonrpc":"2.0","id":"1","error":{"name":"INTERNAL_ERROR","cause":{"name":"INTERNAL_ERROR"},"code":-32000,"message":"Server error"}}`, Internal, true},
		{"validation", http.StatusBadRequest, `{"jsonrpc":"2.0","id":"1","error":{"name":"REQUEST_VALIDATION_ERROR","cause":{"name":"PARSE_ERROR"},"code":-32700,"message":"Parse error"}}`, RequestValidation, false},
		{"unexpected status", http.StatusNotFound, "<html>not found</html>", Unexpected, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
				writeError(w, tt.status, tt.body)
			})
			_, err := c.GenesisConfig(context.Background())
			var serverErr *ServerError
			require.ErrorAs(err, &serverErr)
			require.Equal(tt.kind, serverErr.Kind)
			require.Equal(tt.status, serverErr.StatusCode)
			require.Equal(tt.transient, IsTransient(err))
		})
	}
}

func TestTransportErrors(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeError(w, http.StatusBadGateway, "<html>bad gateway</html>")
	})
	_, err := c.ProtocolConfig(context.Background(), Final())
	var transportErr *TransportError
	require.ErrorAs(err, &transportErr)
	require.True(IsTransient(err))

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	closed := NewClient(config.NetworkConfig{ConnectionName: "gone", RPCURL: url}, Options{})
	_, err = closed.GenesisConfig(context.Background())
	require.ErrorAs(err, &transportErr)
	require.Equal("EXPERIMENTAL_genesis_config", transportErr.Method)
}

func TestContextCancellationIsTransport(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GenesisConfig(ctx)
	var transportErr *TransportError
	require.ErrorAs(err, &transportErr)
	require.True(errors.Is(err, context.Canceled))
}

func TestCallFunction(t *testing.T) {
	require := require.New(t)

	c, requests, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		// {"numerator":10,"denominator":100}
		writeResult(w, `{"result":[123,34,110,117,109,101,114,97,116,111,114,34,58,49,48,44,34,100,101,110,111,109,105,110,97,116,111,114,34,58,49,48,48,125],"logs":[],"block_height":1,"block_hash":"h"}`)
	})

	type fee struct {
		Numerator   uint32 `json:"numerator"`
		Denominator uint32 `json:"denominator"`
	}
	got, err := CallView[fee](context.Background(), c, "pool.testnet", "get_reward_fee_fraction", nil, Final())
	require.NoError(err)
	require.Equal(fee{Numerator: 10, Denominator: 100}, got)
	require.JSONEq(`{"request_type":"call_function","account_id":"pool.testnet","method_name":"get_reward_fee_fraction","args_base64":"","finality":"final"}`, string((*requests)[0].Params))
}

func TestCallFunctionExecutionError(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"error":"wasm execution failed with error: MethodNotFound","logs":[],"block_height":1,"block_hash":"h"}`)
	})
	_, err := c.CallFunction(context.Background(), "alice.testnet", "missing", nil, Final())
	require.True(IsHandlerCause(err, CauseContractExecutionError))
}

func TestValidatorInfoParams(t *testing.T) {
	require := require.New(t)

	c, requests, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"current_validators":[{"account_id":"a.testnet","public_key":"ed25519:x","is_slashed":false,"pledge":"500","shards":[0],"num_produced_blocks":9,"num_expected_blocks":10,"num_produced_chunks":0,"num_expected_chunks":0}],
			"next_validators":[{"account_id":"a.testnet","public_key":"ed25519:x","pledge":"600","shards":[0]}],
			"current_pledge_proposals":[{"account_id":"b.testnet","public_key":"ed25519:y","pledge":"700"}],
			"prev_epoch_kickout":[],"epoch_start_height":100,"epoch_height":3}`)
	})

	info, err := c.ValidatorInfo(context.Background(), LatestEpoch())
	require.NoError(err)
	require.Equal([]types.ValidatorPledge{{AccountID: "a.testnet", Pledge: types.NewBalance(500)}}, info.CurrentPledges())
	require.Equal([]types.ValidatorPledge{{AccountID: "a.testnet", Pledge: types.NewBalance(600)}}, info.NextPledges())
	require.Equal([]types.ValidatorPledge{{AccountID: "b.testnet", Pledge: types.NewBalance(700)}}, info.ProposalPledges())

	_, err = c.ValidatorInfo(context.Background(), EpochAtBlock(AtHeight(77)))
	require.NoError(err)

	require.JSONEq(`[null]`, string((*requests)[0].Params))
	require.JSONEq(`{"block_id":77}`, string((*requests)[1].Params))
}

func TestProtocolConfigMaxSeats(t *testing.T) {
	require := require.New(t)

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeResult(w, `{"protocol_version":60,"num_block_producer_seats":100,"avg_hidden_validator_seats_per_shard":[1,2,3],"minimum_pledge_ratio":[1,6250],"runtime_config":{"storage_amount_per_byte":"10000000000000000000"}}`)
	})
	cfg, err := c.ProtocolConfig(context.Background(), Final())
	require.NoError(err)
	require.Equal(uint64(106), cfg.MaxSeats())
	require.Equal(types.Ratio{Numerator: 1, Denominator: 6250}, cfg.MinimumPledgeRatio)
	require.Equal("10000000000000000000", cfg.RuntimeConfig.StorageAmountPerByte.String())
}
