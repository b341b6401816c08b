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

package horizon

import (
	"github.com/stellar/go/clients/horizonclient"
	protocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

// API represents the subset of the Horizon REST client used to read ledger
// state and submit envelopes. It is satisfied by *horizonclient.Client.
type API interface {
	AccountDetail(request horizonclient.AccountRequest) (protocol.Account, error)
	FeeStats() (protocol.FeeStats, error)
	SubmitTransaction(tx *txnbuild.Transaction) (protocol.Transaction, error)
	SubmitFeeBumpTransaction(tx *txnbuild.FeeBumpTransaction) (protocol.Transaction, error)
	Fund(address string) (protocol.Transaction, error)
}
