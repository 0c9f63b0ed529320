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

package ledgercore

import "fmt"

// Kind distinguishes the evaluator's rejection reasons. The teacher
// spells one Go type per rejection (TransactionInLedgerError,
// BlockInLedgerError, ErrNoEntry, ...); do_evaluate here rejects for
// many more distinct reasons than that pattern comfortably spells out as
// separate types, so they share one Error type tagged by Kind, with
// Context carrying whatever values the specific Kind wants to report.
type Kind int

const (
	// ValidationError wraps a failure from an operation's own Validate.
	ValidationError Kind = iota
	// WrongFeeAsset reports a transfer whose fee is not denominated in
	// the amount asset's configured fee-paying asset.
	WrongFeeAsset
	// WrongFeeAmount reports a negative fee, or a fee below the computed
	// custom fee.
	WrongFeeAmount
	// TransferFromAccountNotWhitelisted reports a sender missing from a
	// whitelist-required asset's whitelist.
	TransferFromAccountNotWhitelisted
	// TransferToAccountNotWhitelisted reports a receiver missing from a
	// whitelist-required asset's whitelist.
	TransferToAccountNotWhitelisted
	// TransferFromAccountRestricted reports a sender on the committee
	// ban list for outgoing transfers.
	TransferFromAccountRestricted
	// TransferToAccountRestricted reports a receiver on the committee
	// ban list for incoming transfers.
	TransferToAccountRestricted
	// TransferRestrictedAsset reports a transfer of an asset whose
	// TransferRestricted flag is set by a non-issuer.
	TransferRestrictedAsset
	// InsufficientBalance reports a sender's asset balance below the
	// amount being sent.
	InsufficientBalance
	// InsufficientBalanceForFee reports a payer's balance below the fee
	// owed.
	InsufficientBalanceForFee
	// DailyLimitExceeded reports an EDC transfer that would exceed the
	// sender's daily transfer limit.
	DailyLimitExceeded
	// BurnOfMarketIssuedAssetForbidden reports a transfer to a burning
	// destination of an asset flagged MarketIssued.
	BurnOfMarketIssuedAssetForbidden
	// OverrideTransferNotPermitted reports an override_transfer whose
	// asset does not grant the issuer CanOverride.
	OverrideTransferNotPermitted
	// WrongIssuer reports an operation whose issuer field does not match
	// the asset's recorded issuer.
	WrongIssuer
	// MissingSingleton reports a ledger object that is not there: the
	// Settings or WitnessesInfo singleton, or an account, asset, asset
	// dynamic data or FBA accumulator looked up by id.
	MissingSingleton
	// AccountRequiresVerification reports a fee payer account that
	// cannot pay a fee until some out-of-scope verification step
	// completes.
	AccountRequiresVerification
)

var kindNames = map[Kind]string{
	ValidationError:                    "validation error",
	WrongFeeAsset:                      "wrong fee asset",
	WrongFeeAmount:                     "wrong fee amount",
	TransferFromAccountNotWhitelisted:  "sender not whitelisted",
	TransferToAccountNotWhitelisted:    "recipient not whitelisted",
	TransferFromAccountRestricted:      "sender restricted",
	TransferToAccountRestricted:        "recipient restricted",
	TransferRestrictedAsset:            "asset transfer restricted",
	InsufficientBalance:                "insufficient balance",
	InsufficientBalanceForFee:          "insufficient balance for fee",
	DailyLimitExceeded:                 "daily transfer limit exceeded",
	BurnOfMarketIssuedAssetForbidden:   "cannot burn a market-issued asset",
	OverrideTransferNotPermitted:       "override transfer not permitted",
	WrongIssuer:                        "wrong issuer",
	MissingSingleton:                   "missing singleton object",
	AccountRequiresVerification:        "account requires verification",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// Error is the evaluator's single rejection type: a Kind plus whatever
// context values that Kind's caller wants surfaced (account ids, asset
// ids, amounts), and optionally the lower-level error it wraps.
type Error struct {
	Kind    Kind
	Context map[string]interface{}
	Wrapped error
}

// New builds an Error of the given Kind with no context.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Newf builds an Error of the given Kind with a single context value,
// the common case of wanting one id or amount in the message.
func Newf(kind Kind, key string, value interface{}) *Error {
	return &Error{Kind: kind, Context: map[string]interface{}{key: value}}
}

// Wrap builds a ValidationError that carries err as its cause.
func Wrap(err error) *Error {
	return &Error{Kind: ValidationError, Wrapped: err}
}

// Error satisfies the builtin error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Wrapped)
	}
	if len(e.Context) == 0 {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Context)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target is an *Error of the same Kind, so callers
// can write errors.Is(err, ledgercore.New(ledgercore.WrongFeeAsset)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}
