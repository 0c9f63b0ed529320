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

package protocol

// OpType identifies the kind of operation carried by a transaction, the
// analogue of the teacher's TxType and of graphene's operation variant
// index. feesched.Parameters.Flat is keyed by this value.
type OpType string

// Operation type tags, one per operation variant this core names.
const (
	UnknownOp                       OpType = "unknown"
	TransferOp                      OpType = "transfer"
	OverrideTransferOp              OpType = "override_transfer"
	BlindTransfer2Op                OpType = "blind_transfer2"
	UpdateBlindTransfer2SettingsOp  OpType = "update_blind_transfer2_settings"
	AssetCreateOp                   OpType = "asset_create"
	AssetUpdateOp                   OpType = "asset_update"
	AssetUpdate2Op                  OpType = "asset_update2"
	AssetUpdateBitassetOp           OpType = "asset_update_bitasset"
	AssetUpdateFeedProducersOp      OpType = "asset_update_feed_producers"
	AssetPublishFeedOp              OpType = "asset_publish_feed"
	AssetReserveOp                  OpType = "asset_reserve"
	AssetIssueOp                    OpType = "asset_issue"
	DailyIssueOp                    OpType = "daily_issue"
	ReferralIssueOp                 OpType = "referral_issue"
	BonusOp                         OpType = "bonus"
	AssetFundFeePoolOp              OpType = "asset_fund_fee_pool"
	EdcAssetFundFeePoolOp           OpType = "edc_asset_fund_fee_pool"
	AssetClaimFeesOp                OpType = "asset_claim_fees"
	AssetSettleOp                   OpType = "asset_settle"
	AssetGlobalSettleOp             OpType = "asset_global_settle"
	AllowCreateAssetOp              OpType = "allow_create_asset"
)
