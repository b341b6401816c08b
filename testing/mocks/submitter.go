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

	"github.com/optakt/stellar-custody/models/custody"
)

type Submitter struct {
	TransactionFunc func(ctx context.Context, tx *txnbuild.Transaction) custody.Submission
	FeeBumpFunc     func(ctx context.Context, tx *txnbuild.FeeBumpTransaction) custody.Submission
	FundFunc        func(ctx context.Context, address string) custody.Submission
}

func BaselineSubmitter(t *testing.T) *Submitter {
	t.Helper()

	s := Submitter{
		TransactionFunc: func(ctx context.Context, tx *txnbuild.Transaction) custody.Submission {
			return custody.Accepted(GenericHash)
		},
		FeeBumpFunc: func(ctx context.Context, tx *txnbuild.FeeBumpTransaction) custody.Submission {
			return custody.Accepted(GenericHash)
		},
		FundFunc: func(ctx context.Context, address string) custody.Submission {
			return custody.Accepted(GenericHash)
		},
	}

	return &s
}

func (s *Submitter) Transaction(ctx context.Context, tx *txnbuild.Transaction) custody.Submission {
	return s.TransactionFunc(ctx, tx)
}

func (s *Submitter) FeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) custody.Submission {
	return s.FeeBumpFunc(ctx, tx)
}

func (s *Submitter) Fund(ctx context.Context, address string) custody.Submission {
	return s.FundFunc(ctx, address)
}
