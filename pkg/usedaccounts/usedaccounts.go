// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package usedaccounts remembers the accounts the user worked with, most
// recent first, so prompts can suggest them.
package usedaccounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

type Entry struct {
	AccountID    types.AccountID `json:"account_id"`
	UsedAsSigner bool            `json:"used_as_signer"`
}

type Repository interface {
	// List returns every entry, most recently used first.
	List() ([]Entry, error)
	// MarkUsed moves accountID to the front. The signer flag is sticky.
	MarkUsed(accountID types.AccountID, asSigner bool) error
	// Accounts returns the ids of List, only signers when signersOnly is set.
	Accounts(signersOnly bool) ([]types.AccountID, error)
	// Rebuild replaces an empty list with accountIDs marked as signers.
	Rebuild(accountIDs []types.AccountID) error
}

func markUsed(entries []Entry, accountID types.AccountID, asSigner bool) []Entry {
	entry := Entry{AccountID: accountID, UsedAsSigner: asSigner}
	if i := slices.IndexFunc(entries, func(e Entry) bool { return e.AccountID == accountID }); i >= 0 {
		entry.UsedAsSigner = entry.UsedAsSigner || entries[i].UsedAsSigner
		entries = slices.Delete(entries, i, i+1)
	}
	return slices.Insert(entries, 0, entry)
}

func accounts(entries []Entry, signersOnly bool) []types.AccountID {
	out := make([]types.AccountID, 0, len(entries))
	for _, e := range entries {
		if !signersOnly || e.UsedAsSigner {
			out = append(out, e.AccountID)
		}
	}
	return out
}

func rebuilt(accountIDs []types.AccountID) []Entry {
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{AccountID: id, UsedAsSigner: true})
	}
	return out
}

// FileRepository keeps the list as JSON in <credentials>/accounts.json.
// An unreadable or corrupt file reads as an empty list.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(credentialsDir string) *FileRepository {
	return &FileRepository{path: filepath.Join(credentialsDir, constants.UsedAccountListFileName)}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Exists reports whether the list file was ever written.
func (r *FileRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

func (r *FileRepository) load() []Entry {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

func (r *FileRepository) save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), constants.UserOnlyDirPerms); err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, constants.WriteReadUserOnlyPerms); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) List() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileRepository) MarkUsed(accountID types.AccountID, asSigner bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(markUsed(r.load(), accountID, asSigner))
}

func (r *FileRepository) Accounts(signersOnly bool) ([]types.AccountID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return accounts(r.load(), signersOnly), nil
}

func (r *FileRepository) Rebuild(accountIDs []types.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(accountIDs) == 0 {
		return nil
	}
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return r.save(rebuilt(accountIDs))
}

// MemoryRepository is a Repository that lives only as long as the process.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
	written bool
}

func NewMemoryRepository(entries ...Entry) *MemoryRepository {
	return &MemoryRepository{entries: slices.Clone(entries), written: len(entries) > 0}
}

func (r *MemoryRepository) List() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries), nil
}

func (r *MemoryRepository) MarkUsed(accountID types.AccountID, asSigner bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = markUsed(r.entries, accountID, asSigner)
	r.written = true
	return nil
}

func (r *MemoryRepository) Accounts(signersOnly bool) ([]types.AccountID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return accounts(r.entries, signersOnly), nil
}

func (r *MemoryRepository) Rebuild(accountIDs []types.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(accountIDs) == 0 || r.written {
		return nil
	}
	r.entries = rebuilt(accountIDs)
	r.written = true
	return nil
}

var (
	_ Repository = (*FileRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)
