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

package envelope_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/custody/signer"
	"github.com/optakt/stellar-custody/models/custody"
	"github.com/optakt/stellar-custody/testing/mocks"
)

func TestPlan(t *testing.T) {
	first := envelope.Merge("", mocks.GenericAddress(1))
	second := envelope.Merge("", mocks.GenericAddress(2))

	t.Run("appends in order without modifying receiver", func(t *testing.T) {
		t.Parallel()

		var empty envelope.Plan
		one := empty.With(first)
		two := one.With(second)

		assert.Equal(t, 0, empty.Len())
		assert.Equal(t, 1, one.Len())
		assert.Equal(t, []txnbuild.Operation{first, second}, two.Operations())
	})

	t.Run("memo is carried over", func(t *testing.T) {
		t.Parallel()

		plan := envelope.Plan{}.WithMemo("invoice").With(first)

		assert.Equal(t, "invoice", plan.Memo())
		assert.Equal(t, 1, plan.Len())
	})

	t.Run("returned operations are a copy", func(t *testing.T) {
		t.Parallel()

		plan := envelope.Plan{}.With(first)
		ops := plan.Operations()
		ops[0] = second

		assert.Equal(t, []txnbuild.Operation{first}, plan.Operations())
	})
}

func TestBuilder_Build(t *testing.T) {
	source := mocks.GenericAccount(0)
	plan := envelope.Plan{}.With(
		envelope.Payment("", mocks.GenericAddress(1), custody.Native(), decimal.NewFromInt(10)),
	)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder()

		tx, err := b.Build(source, mocks.GenericFees, plan.WithMemo("hello"))

		require.NoError(t, err)
		assert.Equal(t, source.Address, tx.SourceAccount().AccountID)
		assert.Equal(t, source.Sequence+1, tx.SequenceNumber())
		assert.Equal(t, mocks.GenericFees.Base, tx.BaseFee())
		assert.Equal(t, txnbuild.MemoText("hello"), tx.Memo())
		assert.Len(t, tx.Operations(), 1)
		assert.Empty(t, tx.Signatures())
	})

	t.Run("base fee never below minimum", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder()

		tx, err := b.Build(source, custody.Fees{Base: 1, Max: 1}, plan)

		require.NoError(t, err)
		assert.Equal(t, int64(txnbuild.MinBaseFee), tx.BaseFee())
		assert.Nil(t, tx.Memo())
	})

	t.Run("validity window", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder(envelope.WithTimeout(time.Minute))

		before := time.Now().UTC().Unix()
		tx, err := b.Build(source, mocks.GenericFees, plan)
		after := time.Now().UTC().Unix()

		require.NoError(t, err)
		bounds := tx.Timebounds()
		assert.GreaterOrEqual(t, bounds.MaxTime, before+60)
		assert.LessOrEqual(t, bounds.MaxTime, after+60)
	})

	t.Run("handles empty plan", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder()

		_, err := b.Build(source, mocks.GenericFees, envelope.Plan{})

		assert.Error(t, err)
	})
}

func TestBuilder_FeeBump(t *testing.T) {
	inner, err := signer.Sign(mocks.GenericTransaction(), mocks.GenericPassphrase, mocks.GenericKeypair(0))
	require.NoError(t, err)

	t.Run("uses maximum fee", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder()

		bump, err := b.FeeBump(inner, mocks.GenericAddress(1), mocks.GenericFees)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericFees.Max, bump.BaseFee())
		assert.Equal(t, mocks.GenericAddress(1), bump.FeeAccount())
		assert.Empty(t, bump.Signatures())
		assert.Equal(t, inner.Signatures(), bump.InnerTransaction().Signatures())
	})

	t.Run("never lower than inner base fee", func(t *testing.T) {
		t.Parallel()

		b := envelope.NewBuilder()

		bump, err := b.FeeBump(inner, mocks.GenericAddress(1), custody.Fees{Base: 1, Max: 1})

		require.NoError(t, err)
		assert.Equal(t, inner.BaseFee(), bump.BaseFee())
	})
}

func TestChangeTrust(t *testing.T) {
	t.Run("issued asset", func(t *testing.T) {
		t.Parallel()

		op, err := envelope.ChangeTrust(mocks.GenericAddress(1), mocks.GenericAsset("USD"), "0")

		require.NoError(t, err)
		assert.Equal(t, "0", op.Limit)
		assert.Equal(t, mocks.GenericAddress(1), op.SourceAccount)
		assert.Equal(t, "USD", op.Line.GetCode())
		assert.Equal(t, mocks.GenericAddress(9), op.Line.GetIssuer())
	})

	t.Run("empty limit is the maximum limit", func(t *testing.T) {
		t.Parallel()

		op, err := envelope.ChangeTrust(mocks.GenericAddress(1), mocks.GenericAsset("USD"), "")
		require.NoError(t, err)
		assert.Equal(t, txnbuild.MaxTrustlineLimit, op.Limit)

		b := envelope.NewBuilder()
		_, err = b.Build(mocks.GenericAccount(1), mocks.GenericFees, envelope.Plan{}.With(op))

		require.NoError(t, err)
		assert.Equal(t, txnbuild.MaxTrustlineLimit, op.Limit)
	})

	t.Run("handles native asset", func(t *testing.T) {
		t.Parallel()

		_, err := envelope.ChangeTrust(mocks.GenericAddress(1), custody.Native(), "")

		assert.Error(t, err)
	})
}

func TestCheckMemo(t *testing.T) {
	assert.NoError(t, envelope.CheckMemo(""))
	assert.NoError(t, envelope.CheckMemo(strings.Repeat("a", envelope.MaxMemoBytes)))
	assert.ErrorAs(t, envelope.CheckMemo(strings.Repeat("a", envelope.MaxMemoBytes+1)), &failure.InvalidMemo{})

	// Multi-byte characters count with their full size.
	assert.ErrorAs(t, envelope.CheckMemo(strings.Repeat("€", 10)), &failure.InvalidMemo{})
}

func TestAsset(t *testing.T) {
	assert.Equal(t, txnbuild.NativeAsset{}, envelope.Asset(custody.Native()))
	assert.Equal(t, txnbuild.CreditAsset{Code: "USD", Issuer: mocks.GenericAddress(9)}, envelope.Asset(mocks.GenericAsset("USD")))
}
