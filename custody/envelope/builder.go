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
	"errors"
	"fmt"

	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

// Builder turns plans into unsigned transaction envelopes.
type Builder struct {
	cfg Config
}

// NewBuilder creates a new envelope builder.
func NewBuilder(opts ...Option) *Builder {

	cfg := Config{
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := Builder{
		cfg: cfg,
	}

	return &b
}

// Build creates the envelope for the given plan, using the next sequence
// number of the source account snapshot and the current base fee.
func (b *Builder) Build(source custody.Account, fees custody.Fees, plan Plan) (*txnbuild.Transaction, error) {

	if plan.Len() == 0 {
		return nil, errors.New("plan has no operations")
	}

	account := txnbuild.NewSimpleAccount(source.Address, source.Sequence)
	params := txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations:           plan.Operations(),
		BaseFee:              maxFee(fees.Base, txnbuild.MinBaseFee),
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(b.cfg.Timeout.Seconds())),
		},
	}
	if plan.Memo() != "" {
		params.Memo = txnbuild.MemoText(plan.Memo())
	}

	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		return nil, fmt.Errorf("could not build transaction: %w", err)
	}

	return tx, nil
}

// FeeBump wraps a signed inner envelope into an unsigned fee-bump envelope
// paid by the given fee account. The fee-bump base fee is the maximum
// accepted fee, and never lower than the inner envelope's base fee.
func (b *Builder) FeeBump(inner *txnbuild.Transaction, feeAccount string, fees custody.Fees) (*txnbuild.FeeBumpTransaction, error) {

	params := txnbuild.FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: feeAccount,
		BaseFee:    maxFee(maxFee(fees.Max, inner.BaseFee()), txnbuild.MinBaseFee),
	}

	tx, err := txnbuild.NewFeeBumpTransaction(params)
	if err != nil {
		return nil, fmt.Errorf("could not build fee-bump transaction: %w", err)
	}

	return tx, nil
}

func maxFee(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
