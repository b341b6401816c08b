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
	"testing"

	"github.com/stellar/go/clients/horizonclient"
	protocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

type Horizon struct {
	AccountDetailFunc            func(request horizonclient.AccountRequest) (protocol.Account, error)
	FeeStatsFunc                 func() (protocol.FeeStats, error)
	SubmitTransactionFunc        func(tx *txnbuild.Transaction) (protocol.Transaction, error)
	SubmitFeeBumpTransactionFunc func(tx *txnbuild.FeeBumpTransaction) (protocol.Transaction, error)
	FundFunc                     func(address string) (protocol.Transaction, error)
}

func BaselineHorizon(t *testing.T) *Horizon {
	t.Helper()

	h := Horizon{
		AccountDetailFunc: func(request horizonclient.AccountRequest) (protocol.Account, error) {
			account := protocol.Account{
				AccountID: request.AccountID,
				Sequence:  GenericSequence,
			}
			return account, nil
		},
		FeeStatsFunc: func() (protocol.FeeStats, error) {
			stats := protocol.FeeStats{
				LastLedgerBaseFee: GenericFees.Base,
			}
			stats.MaxFee.Max = GenericFees.Max
			return stats, nil
		},
		SubmitTransactionFunc: func(tx *txnbuild.Transaction) (protocol.Transaction, error) {
			return protocol.Transaction{Hash: GenericHash}, nil
		},
		SubmitFeeBumpTransactionFunc: func(tx *txnbuild.FeeBumpTransaction) (protocol.Transaction, error) {
			return protocol.Transaction{Hash: GenericHash}, nil
		},
		FundFunc: func(address string) (protocol.Transaction, error) {
			return protocol.Transaction{Hash: GenericHash}, nil
		},
	}

	return &h
}

func (h *Horizon) AccountDetail(request horizonclient.AccountRequest) (protocol.Account, error) {
	return h.AccountDetailFunc(request)
}

func (h *Horizon) FeeStats() (protocol.FeeStats, error) {
	return h.FeeStatsFunc()
}

func (h *Horizon) SubmitTransaction(tx *txnbuild.Transaction) (protocol.Transaction, error) {
	return h.SubmitTransactionFunc(tx)
}

func (h *Horizon) SubmitFeeBumpTransaction(tx *txnbuild.FeeBumpTransaction) (protocol.Transaction, error) {
	return h.SubmitFeeBumpTransactionFunc(tx)
}

func (h *Horizon) Fund(address string) (protocol.Transaction, error) {
	return h.FundFunc(address)
}
