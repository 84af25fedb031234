// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key derives ed25519 access keys from BIP-39 seed phrases and stores
// them in the file keychain.
package key

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

const (
	// HardenedOffset is added to an index for hardened derivation.
	HardenedOffset uint32 = 0x80000000

	ed25519Curve = "ed25519 seed"
)

var (
	ErrInvalidMnemonic = errors.New("invalid seed phrase")
	ErrInvalidHDPath   = errors.New("invalid HD path")
)

// KeyPair is a derived access key with the phrase and path it came from.
type KeyPair struct {
	SeedPhraseHDPath  string          `json:"seed_phrase_hd_path"`
	MasterSeedPhrase  string          `json:"master_seed_phrase"`
	ImplicitAccountID types.AccountID `json:"implicit_account_id"`
	PublicKey         types.PublicKey `json:"public_key"`
	PrivateKey        string          `json:"private_key"`
}

// GenerateMnemonic creates a new 12-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// Generate derives a key pair from a fresh mnemonic along the default path.
func Generate() (*KeyPair, error) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		return nil, err
	}
	return FromSeedPhrase(mnemonic, constants.DefaultSeedPhraseHDPath)
}

// FromSeedPhrase derives the ed25519 key at hdPath (SLIP-0010, hardened
// indices only) from a BIP-39 phrase with an empty passphrase.
func FromSeedPhrase(phrase, hdPath string) (*KeyPair, error) {
	phrase = strings.Join(strings.Fields(phrase), " ")
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}
	path, err := ParseHDPath(hdPath)
	if err != nil {
		return nil, err
	}
	seed, err := bip39.NewSeedWithErrorChecking(phrase, "")
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	secret, _ := deriveEd25519(seed, path)
	priv := ed25519.NewKeyFromSeed(secret[:])
	pub, err := types.PublicKeyFromBytes(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		SeedPhraseHDPath:  hdPath,
		MasterSeedPhrase:  phrase,
		ImplicitAccountID: types.AccountID(hex.EncodeToString(pub.Bytes())),
		PublicKey:         pub,
		PrivateKey:        types.ED25519Prefix + base58.Encode(priv),
	}, nil
}

// ParseHDPath parses "m/44'/397'/0'". Every index must be hardened, marked
// with ' or h.
func ParseHDPath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("%w %q: must start with m", ErrInvalidHDPath, path)
	}
	out := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		trimmed := strings.TrimRight(p, "'h")
		if trimmed == p || len(p)-len(trimmed) != 1 {
			return nil, fmt.Errorf("%w %q: index %q is not hardened", ErrInvalidHDPath, path, p)
		}
		idx, err := strconv.ParseUint(trimmed, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidHDPath, path, err)
		}
		out = append(out, uint32(idx)+HardenedOffset)
	}
	return out, nil
}

// deriveEd25519 walks path from the SLIP-0010 ed25519 master key of seed and
// returns the private key and chain code.
func deriveEd25519(seed []byte, path []uint32) (key, chain [32]byte) {
	key, chain = split(hmacSHA512([]byte(ed25519Curve), seed))
	for _, idx := range path {
		data := make([]byte, 0, 37)
		data = append(data, 0)
		data = append(data, key[:]...)
		data = binary.BigEndian.AppendUint32(data, idx)
		key, chain = split(hmacSHA512(chain[:], data))
	}
	return key, chain
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func split(i []byte) (left, right [32]byte) {
	copy(left[:], i[:32])
	copy(right[:], i[32:])
	return left, right
}
