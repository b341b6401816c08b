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
	model "github.com/optakt/stellar-custody/models/custody"
)

// CreateAccountRequest is the body of an account creation. Without a secret,
// the account is funded by the registry's creation role.
type CreateAccountRequest struct {
	Secret    string `json:"secret,omitempty" validate:"omitempty,secret"`
	Trustline string `json:"trustline,omitempty" validate:"omitempty,asset"`
}

// DeleteAccountRequest is the body of an account deletion.
type DeleteAccountRequest struct {
	Secret string `json:"secret" validate:"required,secret"`
}

// TrustlineRequest is the body of a trustline validation.
type TrustlineRequest struct {
	Asset  string `json:"asset" validate:"required,asset"`
	Secret string `json:"secret" validate:"required,secret"`
	Revoke string `json:"revoke,omitempty" validate:"omitempty,asset"`
	Keep   bool   `json:"keep,omitempty"`
}

// PaymentRequest is the body of a payment batch. With FeeBump set, the signed
// envelope is returned instead of being submitted.
type PaymentRequest struct {
	Secret   string                `json:"secret" validate:"required,secret"`
	Payments []model.PaymentIntent `json:"payments" validate:"dive"`
	FeeBump  bool                  `json:"fee_bump,omitempty"`
}

// PriorityPaymentRequest is the body of a high-priority payment batch.
type PriorityPaymentRequest struct {
	Secret        string                `json:"secret" validate:"required,secret"`
	Payments      []model.PaymentIntent `json:"payments" validate:"dive"`
	PayCommission bool                  `json:"pay_commission,omitempty"`
}

// SwapRequest is the body of a swap.
type SwapRequest struct {
	Sender    model.SwapParty `json:"sender"`
	Recipient model.SwapParty `json:"recipient"`
	Memo      string          `json:"memo,omitempty" validate:"memo"`
}
