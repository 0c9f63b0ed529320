// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package transactions holds the field structs every operation evaluator
// in ledger/apply consumes, the Go analogue of the teacher's
// PaymentTxnFields/AssetConfigTxnFields family.
package transactions

import (
	"fmt"

	"github.com/edcchain/evalcore/config/bounds"
	"github.com/edcchain/evalcore/data/basics"
)

// TransferFields captures the fields of a plain value transfer.
type TransferFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	From   basics.AccountID `codec:"from"`
	To     basics.AccountID `codec:"to"`
	Amount basics.Asset     `codec:"amount"`
	Fee    basics.Asset     `codec:"fee"`
	Memo   string           `codec:"memo"`
}

// Validate checks the structural invariants a transfer must satisfy
// regardless of ledger state: non-negative fee, positive amount, a memo
// within the size bound, and distinct from and to accounts. The fee
// asset is not checked here: fee-asset-matches-paying-asset enforcement
// is a ledger-state check and lives in ledger/eval.
func (t TransferFields) Validate() error {
	if t.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if t.Amount.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if len(t.Memo) > bounds.MaxMemoBytes {
		return fmt.Errorf("memo exceeds %d bytes", bounds.MaxMemoBytes)
	}
	if t.From == t.To {
		return fmt.Errorf("from and to must be different accounts")
	}
	return nil
}

// BlindTransfer2Fields captures the fields of a blind transfer: same
// shape as TransferFields, its fee resolution differs only in
// ledger/apply.
type BlindTransfer2Fields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	From   basics.AccountID `codec:"from"`
	To     basics.AccountID `codec:"to"`
	Amount basics.Asset     `codec:"amount"`
	Fee    basics.Asset     `codec:"fee"`
	Memo   string           `codec:"memo"`
}

// Validate mirrors TransferFields.Validate.
func (t BlindTransfer2Fields) Validate() error {
	return TransferFields(t).Validate()
}

// BlindTransferFeeInput is one entry of
// UpdateBlindTransfer2SettingsFields.Fees: a percentage of the
// transferred amount, charged in FeeAssetID.
type BlindTransferFeeInput struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	FeeAssetID basics.AssetID `codec:"fee_asset_id"`
	Percent    uint16         `codec:"percent"`
}

// UpdateBlindTransfer2SettingsFields updates the chain-wide blind
// transfer fee schedule (Settings.BlindTransferFees /
// Settings.BlindTransferDefaultFee). Issuance of this operation is
// restricted to governance out of scope for this core; Validate checks
// only the structural shape.
type UpdateBlindTransfer2SettingsFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	DefaultFee basics.Asset                             `codec:"default_fee"`
	Fees       map[basics.AssetID]BlindTransferFeeInput `codec:"fees"`
}

// Validate checks that the default fee is non-negative. Per-entry
// percents are a uint16 and so cannot be negative; any fee asset id,
// including CORE (id 0), is a legal charge target.
func (u UpdateBlindTransfer2SettingsFields) Validate() error {
	if u.DefaultFee.Amount < 0 {
		return fmt.Errorf("default fee must be non-negative")
	}
	return nil
}

// OverrideTransferFields captures the fields of an issuer-forced
// transfer: the issuer moves amount out of from's balance regardless of
// from's consent, permitted only when the asset grants CanOverride.
type OverrideTransferFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Issuer basics.AccountID `codec:"issuer"`
	From   basics.AccountID `codec:"from"`
	To     basics.AccountID `codec:"to"`
	Amount basics.Asset     `codec:"amount"`
	Fee    basics.Asset     `codec:"fee"`
	Memo   string           `codec:"memo"`
}

// Validate mirrors TransferFields.Validate. The issuer field is not
// checked here (the issuer authorizing the move need not be a party to
// the transfer itself); ledger/apply matches it against the asset.
func (o OverrideTransferFields) Validate() error {
	if o.Fee.Amount < 0 {
		return fmt.Errorf("fee must be non-negative")
	}
	if o.Amount.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if len(o.Memo) > bounds.MaxMemoBytes {
		return fmt.Errorf("memo exceeds %d bytes", bounds.MaxMemoBytes)
	}
	if o.From == o.To {
		return fmt.Errorf("from and to must be different accounts")
	}
	return nil
}
