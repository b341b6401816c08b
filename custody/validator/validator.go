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

package validator

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/optakt/stellar-custody/models/custody"
)

// Loader represents something that can load a fresh snapshot of an account
// from the ledger. It must return a failure.AccountNotFound error when the
// account does not exist.
type Loader interface {
	Account(ctx context.Context, address string) (custody.Account, error)
}

// Validator answers balance and trustline questions about ledger accounts.
type Validator struct {
	load Loader
}

// New creates a validator that loads account snapshots with the given loader.
func New(load Loader) *Validator {

	v := Validator{
		load: load,
	}

	return &v
}

// HasSufficientBalance loads the account and returns whether it holds at
// least the given amount of the asset.
func (v *Validator) HasSufficientBalance(ctx context.Context, address string, asset custody.Asset, amount decimal.Decimal) (bool, error) {

	account, err := v.load.Account(ctx, address)
	if err != nil {
		return false, fmt.Errorf("could not load account: %w", err)
	}

	return Sufficient(account, asset, amount), nil
}

// HasTrustline loads the account and returns whether it trusts the asset.
func (v *Validator) HasTrustline(ctx context.Context, address string, asset custody.Asset) (bool, error) {

	// The native asset needs no trustline, so we don't even need to check
	// whether the account exists.
	if asset.IsNative() {
		return true, nil
	}

	account, err := v.load.Account(ctx, address)
	if err != nil {
		return false, fmt.Errorf("could not load account: %w", err)
	}

	return Trusted(account, asset), nil
}

// Sufficient returns whether the account snapshot holds at least the given
// amount of the asset. An account without a balance line for the asset never
// holds a sufficient balance.
func Sufficient(account custody.Account, asset custody.Asset, amount decimal.Decimal) bool {
	balance, ok := account.Balance(asset)
	if !ok {
		return false
	}
	return balance.Amount.GreaterThanOrEqual(amount)
}

// Trusted returns whether the account snapshot carries a balance line for the
// asset. The native asset is always trusted.
func Trusted(account custody.Account, asset custody.Asset) bool {
	if asset.IsNative() {
		return true
	}
	_, ok := account.Balance(asset)
	return ok
}
