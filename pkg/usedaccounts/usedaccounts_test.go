// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package usedaccounts

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

func repositories(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"file":   NewFileRepository(t.TempDir()),
		"memory": NewMemoryRepository(),
	}
}

func TestMarkUsed(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			require.NoError(repo.MarkUsed("a.unc", true))
			require.NoError(repo.MarkUsed("b.unc", false))
			require.NoError(repo.MarkUsed("a.unc", false))
			require.NoError(repo.MarkUsed("c.unc", false))

			entries, err := repo.List()
			require.NoError(err)
			require.Equal([]Entry{
				{AccountID: "c.unc"},
				{AccountID: "a.unc", UsedAsSigner: true},
				{AccountID: "b.unc"},
			}, entries)

			signers, err := repo.Accounts(true)
			require.NoError(err)
			require.Equal([]types.AccountID{"a.unc"}, signers)

			all, err := repo.Accounts(false)
			require.NoError(err)
			require.Equal([]types.AccountID{"c.unc", "a.unc", "b.unc"}, all)
		})
	}
}

func TestRebuild(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			require.NoError(repo.Rebuild(nil))
			entries, err := repo.List()
			require.NoError(err)
			require.Empty(entries)

			require.NoError(repo.Rebuild([]types.AccountID{"z.unc", "a.unc", "z.unc"}))
			entries, err = repo.List()
			require.NoError(err)
			require.Equal([]Entry{
				{AccountID: "a.unc", UsedAsSigner: true},
				{AccountID: "z.unc", UsedAsSigner: true},
			}, entries)

			// An existing list is kept.
			require.NoError(repo.Rebuild([]types.AccountID{"other.unc"}))
			all, err := repo.Accounts(false)
			require.NoError(err)
			require.Equal([]types.AccountID{"a.unc", "z.unc"}, all)
		})
	}
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	require := require.New(t)

	repo := NewFileRepository(t.TempDir())
	require.False(repo.Exists())
	require.NoError(os.WriteFile(repo.Path(), []byte("not json"), constants.WriteReadUserOnlyPerms))
	require.True(repo.Exists())

	entries, err := repo.List()
	require.NoError(err)
	require.Empty(entries)

	require.NoError(repo.MarkUsed("a.unc", false))
	entries, err = repo.List()
	require.NoError(err)
	require.Equal([]Entry{{AccountID: "a.unc"}}, entries)
}

func TestFileRepositoryFormat(t *testing.T) {
	require := require.New(t)

	repo := NewFileRepository(t.TempDir())
	require.NoError(repo.MarkUsed("a.unc", true))
	data, err := os.ReadFile(repo.Path())
	require.NoError(err)
	require.JSONEq(`[{"account_id":"a.unc","used_as_signer":true}]`, string(data))
}
