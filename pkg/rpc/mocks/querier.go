// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
)

// Querier is a mock implementation of rpc.Querier
type Querier struct {
	mock.Mock
}

var _ rpc.Querier = (*Querier)(nil)

func (m *Querier) NetworkName() string {
	args := m.Called()
	return args.String(0)
}

func (m *Querier) ViewAccount(ctx context.Context, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccountView, error) {
	args := m.Called(ctx, accountID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.AccountView), args.Error(1)
}

func (m *Querier) ViewAccessKey(ctx context.Context, accountID types.AccountID, publicKey types.PublicKey, ref rpc.BlockReference) (*rpc.AccessKeyView, error) {
	args := m.Called(ctx, accountID, publicKey, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.AccessKeyView), args.Error(1)
}

func (m *Querier) ViewAccessKeyList(ctx context.Context, accountID types.AccountID, ref rpc.BlockReference) (*rpc.AccessKeyList, error) {
	args := m.Called(ctx, accountID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.AccessKeyList), args.Error(1)
}

func (m *Querier) CallFunction(ctx context.Context, accountID types.AccountID, method string, fnArgs []byte, ref rpc.BlockReference) (*rpc.CallResult, error) {
	args := m.Called(ctx, accountID, method, fnArgs, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.CallResult), args.Error(1)
}

func (m *Querier) ValidatorInfo(ctx context.Context, epoch rpc.EpochReference) (*rpc.EpochValidatorInfo, error) {
	args := m.Called(ctx, epoch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.EpochValidatorInfo), args.Error(1)
}

func (m *Querier) GenesisConfig(ctx context.Context) (*rpc.GenesisConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.GenesisConfig), args.Error(1)
}

func (m *Querier) ProtocolConfig(ctx context.Context, ref rpc.BlockReference) (*rpc.ProtocolConfig, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rpc.ProtocolConfig), args.Error(1)
}
