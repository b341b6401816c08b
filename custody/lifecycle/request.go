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
	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/models/custody"
)

// CreateRequest describes an account to create. The account is funded by the
// account of the given secret, or by the registry's account creation role
// when no secret is given. An extra trustline can be requested on top of the
// baseline trustlines.
type CreateRequest struct {
	Secret    string
	Trustline string
}

// Created is the outcome of an account creation. The keypair is returned
// even when the network rejected the submission.
type Created struct {
	Keypair    *keypair.Full
	Submission custody.Submission
}

// TrustlineRequest describes a trustline a wallet should hold. When the
// wallet does not trust the asset yet, one of its existing trustlines is
// removed in the same transaction: the one given by Revoke, or its first
// issued trustline if Revoke is empty. Keep disables the removal.
type TrustlineRequest struct {
	Asset  string
	Secret string
	Revoke string
	Keep   bool
}
