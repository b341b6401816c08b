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

	"github.com/stellar/go/txnbuild"
)

type API struct {
	SubmitTransactionFunc func(ctx context.Context, tx *txnbuild.Transaction) (string, error)
	SubmitFeeBumpFunc     func(ctx context.Context, tx *txnbuild.FeeBumpTransaction) (string, error)
	FundFunc              func(ctx context.Context, address string) (string, error)
}

func BaselineAPI(t *testing.T) *API {
	t.Helper()

	a := API{
		SubmitTransactionFunc: func(ctx context.Context, tx *txnbuild.Transaction) (string, error) {
			return GenericHash, nil
		},
		SubmitFeeBumpFunc: func(ctx context.Context, tx *txnbuild.FeeBumpTransaction) (string, error) {
			return GenericHash, nil
		},
		FundFunc: func(ctx context.Context, address string) (string, error) {
			return GenericHash, nil
		},
	}

	return &a
}

func (a *API) SubmitTransaction(ctx context.Context, tx *txnbuild.Transaction) (string, error) {
	return a.SubmitTransactionFunc(ctx, tx)
}

func (a *API) SubmitFeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) (string, error) {
	return a.SubmitFeeBumpFunc(ctx, tx)
}

func (a *API) Fund(ctx context.Context, address string) (string, error) {
	return a.FundFunc(ctx, address)
}
