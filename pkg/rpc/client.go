// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/constants"
)

const (
	jsonRPCVersion  = "2.0"
	apiKeyHeader    = "x-api-key"
	maxResponseSize = 64 << 20
)

// Options tunes a Client. Zero values select the defaults.
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond int
	Burst             int
	HTTPClient        *http.Client
	Logger            *zap.Logger
}

// Client sends JSON-RPC requests to a single network's node.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	network config.NetworkConfig
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	log     *zap.Logger
	nextID  atomic.Uint64
}

func NewClient(network config.NetworkConfig, o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = constants.APIRequestTimeout
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = constants.DefaultRPCRequestsPerSecond
	}
	if o.Burst <= 0 {
		o.Burst = constants.DefaultRPCBurst
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &Client{
		network: network,
		http:    o.HTTPClient,
		limiter: rate.NewLimiter(rate.Limit(o.RequestsPerSecond), o.Burst),
		timeout: o.Timeout,
		log:     o.Logger.With(zap.String("network", network.ConnectionName)),
	}
}

// NetworkName returns the connection name the client talks to.
func (c *Client) NetworkName() string {
	return c.network.ConnectionName
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcErrorBody   `json:"error"`
}

// call performs one JSON-RPC request and returns the raw result.
func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}

	payload, err := json.Marshal(request{
		JSONRPC: jsonRPCVersion,
		ID:      strconv.FormatUint(c.nextID.Add(1), 10),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.network.RPCURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.network.RPCAPIKey != "" {
		req.Header.Set(apiKeyHeader, c.network.RPCAPIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("rpc request failed", zap.String("method", method), zap.Error(err))
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	c.log.Debug("rpc response",
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(body)),
	)
	return classify(method, resp.StatusCode, body)
}

func classify(method string, status int, body []byte) (json.RawMessage, error) {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &ServerError{Method: method, Kind: Unauthorized, StatusCode: status, Message: string(bytes.TrimSpace(body))}
	case http.StatusTooManyRequests:
		return nil, &ServerError{Method: method, Kind: RateLimited, StatusCode: status, Message: string(bytes.TrimSpace(body))}
	}

	var env response
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= http.StatusInternalServerError || status == http.StatusOK {
			return nil, &TransportError{Method: method, Err: fmt.Errorf("status %d: cannot decode body: %w", status, err)}
		}
		return nil, &ServerError{Method: method, Kind: Unexpected, StatusCode: status, Message: string(bytes.TrimSpace(body))}
	}
	if env.Error != nil {
		return nil, env.Error.toServerError(method, status)
	}
	if status != http.StatusOK {
		return nil, &ServerError{Method: method, Kind: Unexpected, StatusCode: status, Message: http.StatusText(status)}
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return nil, &TransportError{Method: method, Err: errors.New("response has neither result nor error")}
	}
	return env.Result, nil
}
