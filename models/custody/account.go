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

package custody

import (
	"github.com/shopspring/decimal"
)

// Balance is one balance line of an account. For issued assets, the presence
// of the line means the account trusts the asset, even with a zero amount.
type Balance struct {
	Asset  Asset
	Amount decimal.Decimal
	Limit  decimal.Decimal
}

// Account is a read-only snapshot of a ledger account. The sequence number is
// owned by the network; it is only valid for building the next transaction
// as long as no other transaction from the same account got applied.
type Account struct {
	Address  string
	Sequence int64
	Balances []Balance
}

// Balance returns the first balance line matching the asset. Native lines
// match by type, issued lines match by code.
func (a Account) Balance(asset Asset) (Balance, bool) {
	for _, balance := range a.Balances {
		if balance.Asset.SameCode(asset) {
			return balance, true
		}
	}
	return Balance{}, false
}

// Issued returns the balance lines of all non-native assets, in ledger order.
func (a Account) Issued() []Balance {
	var issued []Balance
	for _, balance := range a.Balances {
		if balance.Asset.IsNative() {
			continue
		}
		issued = append(issued, balance)
	}
	return issued
}
