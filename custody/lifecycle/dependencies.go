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

package lifecycle

import (
	"context"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

// Ledger represents something that can load fresh account and fee snapshots
// from the ledger network.
type Ledger interface {
	Account(ctx context.Context, address string) (custody.Account, error)
	Fees(ctx context.Context) (custody.Fees, error)
}

// Submitter represents something that can submit signed envelopes and ask
// the test network faucet for funds.
type Submitter interface {
	Transaction(ctx context.Context, tx *txnbuild.Transaction) custody.Submission
	Fund(ctx context.Context, address string) custody.Submission
}

// Registry represents the role registry of custodial accounts.
type Registry interface {
	Lookup(role custody.Role) (string, error)
	Signers(role custody.Role) ([]keypair.KP, error)
	CreateBy() custody.Role
	Master() custody.Role
	Trustlines() []custody.Asset
}
