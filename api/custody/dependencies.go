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

package custody

import (
	"context"

	"github.com/optakt/stellar-custody/custody/lifecycle"
	"github.com/optakt/stellar-custody/custody/payment"
	"github.com/optakt/stellar-custody/custody/swap"
	model "github.com/optakt/stellar-custody/models/custody"
)

// Accounts represents the account lifecycle operations.
type Accounts interface {
	CreateAccount(ctx context.Context, req lifecycle.CreateRequest) (lifecycle.Created, error)
	CreateDemoAccount(ctx context.Context) (lifecycle.Created, error)
	DeleteAccount(ctx context.Context, secret string) (model.Submission, error)
	ValidateTrustLine(ctx context.Context, req lifecycle.TrustlineRequest) (model.Submission, error)
}

// Payments represents the payment operations.
type Payments interface {
	SendPayment(ctx context.Context, req payment.Request) (payment.Result, error)
	SendHighPriorityPayment(ctx context.Context, req payment.HighPriorityRequest) (model.Submission, error)
}

// Swaps represents the swap operation.
type Swaps interface {
	SwapPayment(ctx context.Context, sender model.SwapParty, recipient model.SwapParty, memo string) swap.Result
}
