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

package asset_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/failure"
)

func TestParseAmount(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		amount, err := asset.ParseAmount("12.5")

		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("smallest unit", func(t *testing.T) {
		t.Parallel()

		amount, err := asset.ParseAmount("0.0000001")

		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.New(1, -7)))
	})

	t.Run("handles invalid amounts", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"", "abc", "0", "-1", "0.00000001"} {
			_, err := asset.ParseAmount(text)

			var invalid failure.InvalidAmount
			require.ErrorAs(t, err, &invalid, text)
			assert.Equal(t, text, invalid.Amount)
		}
	})
}
