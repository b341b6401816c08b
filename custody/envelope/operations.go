// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package envelope

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

// Asset converts an asset into its ledger representation.
func Asset(asset custody.Asset) txnbuild.Asset {
	if asset.IsNative() {
		return txnbuild.NativeAsset{}
	}
	return txnbuild.CreditAsset{
		Code:   asset.Code,
		Issuer: asset.Issuer,
	}
}

// Payment creates a payment operation. An empty source uses the envelope's
// source account.
func Payment(source string, destination string, asset custody.Asset, amount decimal.Decimal) *txnbuild.Payment {
	return &txnbuild.Payment{
		Destination:   destination,
		Amount:        amount.String(),
		Asset:         Asset(asset),
		SourceAccount: source,
	}
}

// ChangeTrust creates a change-trust operation for an issued asset. An empty
// limit is set to the maximum limit, while a limit of zero removes the
// trustline.
func ChangeTrust(source string, asset custody.Asset, limit string) (*txnbuild.ChangeTrust, error) {

	if asset.IsNative() {
		return nil, fmt.Errorf("native asset can not be trusted")
	}

	line, err := Asset(asset).ToChangeTrustAsset()
	if err != nil {
		return nil, fmt.Errorf("could not convert asset (%s): %w", asset, err)
	}

	if limit == "" {
		limit = txnbuild.MaxTrustlineLimit
	}

	op := txnbuild.ChangeTrust{
		Line:          line,
		Limit:         limit,
		SourceAccount: source,
	}

	return &op, nil
}

// CreateAccount creates an account creation operation.
func CreateAccount(source string, destination string, balance decimal.Decimal) *txnbuild.CreateAccount {
	return &txnbuild.CreateAccount{
		Destination:   destination,
		Amount:        balance.String(),
		SourceAccount: source,
	}
}

// HomeDomain creates a set-options operation setting the home domain.
func HomeDomain(source string, domain string) *txnbuild.SetOptions {
	return &txnbuild.SetOptions{
		HomeDomain:    txnbuild.NewHomeDomain(domain),
		SourceAccount: source,
	}
}

// Merge creates an account merge operation.
func Merge(source string, destination string) *txnbuild.AccountMerge {
	return &txnbuild.AccountMerge{
		Destination:   destination,
		SourceAccount: source,
	}
}
