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
	"github.com/optakt/stellar-custody/custody/lifecycle"
	"github.com/optakt/stellar-custody/custody/swap"
	model "github.com/optakt/stellar-custody/models/custody"
)

// Submission is the outcome of an envelope submission. Both hash and
// rejection are empty when nothing needed to be submitted.
type Submission struct {
	Hash      string     `json:"hash,omitempty"`
	Rejection *Rejection `json:"rejection,omitempty"`
}

// Rejection describes why the network refused an envelope.
type Rejection struct {
	Status      int      `json:"status,omitempty"`
	Title       string   `json:"title,omitempty"`
	Transaction string   `json:"transaction,omitempty"`
	Operations  []string `json:"operations,omitempty"`
	Message     string   `json:"message"`
}

// AccountResponse is returned for account creations.
type AccountResponse struct {
	Address    string     `json:"address"`
	Secret     string     `json:"secret"`
	Submission Submission `json:"submission"`
}

// PaymentResponse is returned for payment batches. Envelope holds the signed
// envelope when its submission was deferred.
type PaymentResponse struct {
	Submission Submission `json:"submission"`
	Envelope   string     `json:"envelope,omitempty"`
}

// SwapResponse is returned for swaps.
type SwapResponse struct {
	Status     string     `json:"status"`
	Submission Submission `json:"submission"`
	Error      string     `json:"error,omitempty"`
}

func convertSubmission(sub model.Submission) Submission {
	s := Submission{
		Hash: sub.Hash,
	}
	if sub.Rejection != nil {
		s.Rejection = &Rejection{
			Status:      sub.Rejection.Status,
			Title:       sub.Rejection.Title,
			Transaction: sub.Rejection.Transaction,
			Operations:  sub.Rejection.Operations,
			Message:     sub.Rejection.Description.String(),
		}
	}
	return s
}

func convertCreated(created lifecycle.Created) AccountResponse {
	return AccountResponse{
		Address:    created.Keypair.Address(),
		Secret:     created.Keypair.Seed(),
		Submission: convertSubmission(created.Submission),
	}
}

func convertSwap(result swap.Result) SwapResponse {
	res := SwapResponse{
		Status:     string(result.Status),
		Submission: convertSubmission(result.Submission),
	}
	if result.Err != nil {
		res.Error = result.Err.Error()
	}
	return res
}
