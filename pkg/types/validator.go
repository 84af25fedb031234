// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"fmt"

	"github.com/moznion/go-optional"
)

// ValidatorPledge pairs an account with the amount it pledged.
type ValidatorPledge struct {
	AccountID AccountID `json:"account_id"`
	Pledge    Balance   `json:"pledge"`
}

// Ratio is a rational protocol parameter such as the minimum pledge ratio.
type Ratio struct {
	Numerator   uint64
	Denominator uint64
}

// UnmarshalJSON decodes the node's [numerator, denominator] pair.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	var pair [2]uint64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid ratio %s: %w", data, err)
	}
	r.Numerator, r.Denominator = pair[0], pair[1]
	return nil
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{r.Numerator, r.Denominator})
}

type ProposalStatus int

const (
	Rollover ProposalStatus = iota
	ProposalAccepted
	ProposalDeclined
	KickedOut
	New
	Rewarded
)

func (s ProposalStatus) String() string {
	switch s {
	case Rollover:
		return "Rollover"
	case ProposalAccepted:
		return "Proposal(Accepted)"
	case ProposalDeclined:
		return "Proposal(Declined)"
	case KickedOut:
		return "Kicked out"
	case New:
		return "New"
	case Rewarded:
		return "Rewarded"
	}
	return fmt.Sprintf("ProposalStatus(%d)", int(s))
}

func (s ProposalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ProposalRecord is the per-account outcome of joining current validators,
// next validators and pledge proposals.
//
// Pledge is what the account competes for a seat with when it has no
// proposal: its next epoch pledge, or for kicked out accounts the current
// one. CurrentPledge is None when the account does not validate the current
// epoch.
type ProposalRecord struct {
	AccountID     AccountID
	Status        ProposalStatus
	Pledge        Balance
	CurrentPledge optional.Option[Balance]
	NewPledge     optional.Option[Balance]
}

// EffectivePledge is the new pledge when there is one, Pledge otherwise.
func (r ProposalRecord) EffectivePledge() Balance {
	return r.NewPledge.TakeOr(r.Pledge)
}

type proposalRecordJSON struct {
	AccountID     AccountID `json:"account_id" yaml:"account_id"`
	Status        string    `json:"status" yaml:"status"`
	Pledge        string    `json:"pledge" yaml:"pledge"`
	CurrentPledge *string   `json:"current_pledge,omitempty" yaml:"current_pledge,omitempty"`
	NewPledge     *string   `json:"new_pledge,omitempty" yaml:"new_pledge,omitempty"`
}

func optionalString(b optional.Option[Balance]) *string {
	if b.IsNone() {
		return nil
	}
	s := b.Unwrap().String()
	return &s
}

func (r ProposalRecord) view() proposalRecordJSON {
	return proposalRecordJSON{
		AccountID:     r.AccountID,
		Status:        r.Status.String(),
		Pledge:        r.Pledge.String(),
		CurrentPledge: optionalString(r.CurrentPledge),
		NewPledge:     optionalString(r.NewPledge),
	}
}

func (r ProposalRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

func (r ProposalRecord) MarshalYAML() (interface{}, error) {
	return r.view(), nil
}
