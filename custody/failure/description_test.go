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

package failure_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	address := mocks.GenericAddress(0)
	index := 84
	amount := decimal.RequireFromString("12.5000000")
	codes := []string{"op_underfunded", "op_success"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithString("address", address),
			failure.WithInt("index", index),
			failure.WithDecimal("amount", amount),
			failure.WithStrings("codes", codes...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("address: %v", address))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), "amount: 12.5")
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("codes: %v", codes))
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})

	t.Run("iterates fields in order", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody,
			failure.WithString("first", "1"),
			failure.WithString("second", "2"),
		)

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"first", "second"}, keys)
	})
}

func TestNetworkRejection_Error(t *testing.T) {
	t.Run("without result codes", func(t *testing.T) {
		t.Parallel()

		err := failure.NetworkRejection{
			Description: failure.NewDescription("timeout"),
			Status:      504,
		}

		assert.Equal(t, "network rejection (status: 504): timeout", err.Error())
	})

	t.Run("with result codes", func(t *testing.T) {
		t.Parallel()

		err := failure.NetworkRejection{
			Description: failure.NewDescription("Transaction Failed"),
			Status:      400,
			Transaction: "tx_failed",
			Operations:  []string{"op_success", "op_no_trust"},
		}

		assert.Contains(t, err.Error(), "tx_failed")
		assert.Contains(t, err.Error(), "op_success op_no_trust")
	})
}
