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

package payment

import (
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

// Request is a batch of payments sent from the account of the given secret.
// With FeeBump set, the signed envelope is returned instead of submitted, so
// that it can be wrapped into a fee-bump envelope.
type Request struct {
	Payments []custody.PaymentIntent
	Secret   string
	FeeBump  bool
}

// HighPriorityRequest is a batch of payments submitted with a fee-bump
// envelope. The fee-bump is paid by the sender, or by the registry's
// commission role when PayCommission is set.
type HighPriorityRequest struct {
	Payments      []custody.PaymentIntent
	Secret        string
	PayCommission bool
}

// Result holds either the submission of a payment batch, or its signed but
// unsubmitted envelope.
type Result struct {
	Submission  custody.Submission
	Transaction *txnbuild.Transaction
}
