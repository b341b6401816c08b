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

package submitter

import (
	"context"

	"github.com/stellar/go/txnbuild"
)

// API represents the ledger network endpoints that accept envelopes and fund
// test accounts. A refusal by the network should be returned as a
// failure.NetworkRejection error.
type API interface {
	SubmitTransaction(ctx context.Context, tx *txnbuild.Transaction) (string, error)
	SubmitFeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) (string, error)
	Fund(ctx context.Context, address string) (string, error)
}
