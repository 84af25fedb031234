// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

// Keychain is the legacy credentials directory: one directory per network
// holding <account>.json and <account>/<public key>.json files.
type Keychain struct {
	Dir string
}

type keyFile struct {
	AccountID  types.AccountID `json:"account_id"`
	PublicKey  types.PublicKey `json:"public_key"`
	PrivateKey string          `json:"private_key"`
}

// SaveResult lists the files written and the ones left untouched because
// they already existed.
type SaveResult struct {
	Written []string
	Skipped []string
}

func (r SaveResult) String() string {
	lines := make([]string, 0, len(r.Written)+len(r.Skipped))
	for _, p := range r.Written {
		lines = append(lines, fmt.Sprintf("The data for the access key is saved in a file %s", p))
	}
	for _, p := range r.Skipped {
		lines = append(lines, fmt.Sprintf("The file: %s already exists! Therefore it was not overwritten.", p))
	}
	return strings.Join(lines, "\n")
}

// Save stores kp as an access key of accountID on network. Existing files
// are never overwritten.
func (k Keychain) Save(network string, accountID types.AccountID, kp *KeyPair) (SaveResult, error) {
	var res SaveResult
	data, err := json.Marshal(keyFile{AccountID: accountID, PublicKey: kp.PublicKey, PrivateKey: kp.PrivateKey})
	if err != nil {
		return res, err
	}
	keyName := strings.ReplaceAll(kp.PublicKey.String(), ":", "_") + constants.KeyFileSuffix
	paths := []string{
		filepath.Join(k.Dir, network, accountID.String(), keyName),
		filepath.Join(k.Dir, network, accountID.String()+constants.KeyFileSuffix),
	}
	for _, p := range paths {
		written, err := writeNew(p, data)
		if err != nil {
			return res, err
		}
		if written {
			res.Written = append(res.Written, p)
		} else {
			res.Skipped = append(res.Skipped, p)
		}
	}
	return res, nil
}

func writeNew(path string, data []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), constants.UserOnlyDirPerms); err != nil {
		return false, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.WriteReadUserOnlyPerms)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("failed to write to file %s: %w", path, err)
	}
	return true, f.Close()
}

// Accounts returns the valid account ids found in any network directory,
// sorted and without duplicates. A missing keychain has no accounts.
func (k Keychain) Accounts() ([]types.AccountID, error) {
	networks, err := os.ReadDir(k.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []types.AccountID
	for _, network := range networks {
		if !network.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(k.Dir, network.Name()))
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			name := e.Name()
			switch {
			case !e.IsDir() && filepath.Ext(name) == constants.KeyFileSuffix:
				name = strings.TrimSuffix(name, constants.KeyFileSuffix)
			case !e.IsDir():
				continue
			}
			if id, err := types.ParseAccountID(name); err == nil {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}
