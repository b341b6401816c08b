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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/stellar-custody/models/custody"
)

type Ledger struct {
	AccountFunc func(ctx context.Context, address string) (custody.Account, error)
	FeesFunc    func(ctx context.Context) (custody.Fees, error)
}

func BaselineLedger(t *testing.T) *Ledger {
	t.Helper()

	l := Ledger{
		AccountFunc: func(ctx context.Context, address string) (custody.Account, error) {
			account := GenericAccount(0)
			account.Address = address
			return account, nil
		},
		FeesFunc: func(ctx context.Context) (custody.Fees, error) {
			return GenericFees, nil
		},
	}

	return &l
}

func (l *Ledger) Account(ctx context.Context, address string) (custody.Account, error) {
	return l.AccountFunc(ctx, address)
}

func (l *Ledger) Fees(ctx context.Context) (custody.Fees, error) {
	return l.FeesFunc(ctx)
}
