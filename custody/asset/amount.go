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

package asset

import (
	"github.com/shopspring/decimal"

	"github.com/optakt/stellar-custody/custody/failure"
)

// precision is the number of decimal places the ledger represents amounts with.
const precision = 7

// ParseAmount parses a decimal amount of an asset. The amount must be
// positive and must not have more decimal places than the ledger supports.
func ParseAmount(text string) (decimal.Decimal, error) {

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, failure.InvalidAmount{
			Description: failure.NewDescription("amount is not a decimal number", failure.WithErr(err)),
			Amount:      text,
		}
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, failure.InvalidAmount{
			Description: failure.NewDescription("amount must be positive"),
			Amount:      text,
		}
	}

	if !amount.Equal(amount.Truncate(precision)) {
		return decimal.Decimal{}, failure.InvalidAmount{
			Description: failure.NewDescription("amount has too many decimal places",
				failure.WithInt("precision", precision),
			),
			Amount: text,
		}
	}

	return amount, nil
}
