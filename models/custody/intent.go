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

// PaymentIntent is a single payment within a payment request. The recipient
// is designated either by address or by secret; a recipient secret allows
// establishing a missing trustline on the recipient's behalf.
type PaymentIntent struct {
	Asset             string `json:"asset" validate:"required,asset"`
	Amount            string `json:"amount" validate:"required,amount"`
	Destination       string `json:"destination,omitempty" validate:"omitempty,address"`
	DestinationSecret string `json:"destination_secret,omitempty" validate:"omitempty,secret"`
	Memo              string `json:"memo,omitempty" validate:"memo"`
}

// SwapParty is one side of an atomic two-leg exchange: the party gives
// Amount of Asset to the other side.
type SwapParty struct {
	Secret string `json:"secret" validate:"required,secret"`
	Asset  string `json:"asset" validate:"required,asset"`
	Amount string `json:"amount" validate:"required,amount"`
}
