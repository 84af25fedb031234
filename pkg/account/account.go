// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account queries account state and access keys. Existence probes
// retry transient failures under a retry.Policy.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/unc-network/unc-cli/pkg/retry"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
)

var ErrNotFound = errors.New("account does not exist")

type Querier interface {
	NetworkName() string
	ViewAccount(ctx context.Context, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccountView, error)
	ViewAccessKey(ctx context.Context, accountID types.AccountID, publicKey types.PublicKey, ref rpc.BlockReference) (*rpc.AccessKeyView, error)
	ViewAccessKeyList(ctx context.Context, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccessKeyList, error)
	ProtocolConfig(ctx context.Context, ref rpc.BlockReference) (*rpc.ProtocolConfig, error)
}

// Prober runs account and access key lookups under Policy. Notify receives a
// message for every transient failure before the policy is consulted.
type Prober struct {
	Policy retry.Policy
	Notify func(msg string)
}

func (p Prober) options(network string, accountID types.AccountID) retry.Options {
	return retry.Options{OnTransient: func(_ int, err error) {
		if p.Notify == nil {
			return
		}
		reason := "server error"
		var transportErr *rpc.TransportError
		if errors.As(err, &transportErr) {
			reason = "connectivity issue"
		}
		p.Notify(fmt.Sprintf(
			"\nAccount information (%s) cannot be fetched on <%s> network due to %s.",
			accountID, network, reason,
		))
	}}
}

func (p Prober) policy() retry.Policy {
	if p.Policy == nil {
		return retry.FixedPolicy{}
	}
	return p.Policy
}

// GetAccountState views accountID at ref. An unknown account is returned
// immediately as a handler error with cause UNKNOWN_ACCOUNT.
func (p Prober) GetAccountState(ctx context.Context, q Querier, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccountView, error) {
	return retry.Do(ctx, p.policy(),
		retry.QueryClassifier(rpc.CauseUnknownAccount),
		func(ctx context.Context) (*rpc.AccountView, error) {
			return q.ViewAccount(ctx, accountID, ref)
		},
		p.options(q.NetworkName(), accountID),
	)
}

// VerifyAccessKey views the access key publicKey of accountID at the latest
// final block. An unknown key is returned immediately with cause UNKNOWN_ACCESS_KEY.
func (p Prober) VerifyAccessKey(ctx context.Context, q Querier, accountID types.AccountID, publicKey types.PublicKey) (*rpc.AccessKeyView, error) {
	return retry.Do(ctx, p.policy(),
		retry.QueryClassifier(rpc.CauseUnknownAccessKey),
		func(ctx context.Context) (*rpc.AccessKeyView, error) {
			return q.ViewAccessKey(ctx, accountID, publicKey, rpc.Final())
		},
		p.options(q.NetworkName(), accountID),
	)
}

// Exists reports whether accountID can be viewed on any of the networks.
func (p Prober) Exists(ctx context.Context, networks []Querier, accountID types.AccountID) bool {
	_, ok := p.FindNetwork(ctx, networks, accountID)
	return ok
}

// FindNetwork returns the first network, in the given order, where accountID exists.
func (p Prober) FindNetwork(ctx context.Context, networks []Querier, accountID types.AccountID) (Querier, bool) {
	for _, q := range networks {
		if _, err := p.GetAccountState(ctx, q, accountID, rpc.Final()); err == nil {
			return q, true
		}
	}
	return nil, false
}

// AccessKeys lists the access keys of accountID at ref.
func AccessKeys(ctx context.Context, q Querier, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccessKeyList, error) {
	list, err := q.ViewAccessKeyList(ctx, accountID, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch access keys of %s: %w", accountID, err)
	}
	return list, nil
}
