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

package swap

import (
	"github.com/optakt/stellar-custody/models/custody"
)

// Status is the outcome of a swap.
type Status string

const (
	// Settled means both legs of the swap were accepted by the network.
	Settled Status = "settled"
	// Declined means the sender could not cover its leg of the swap, so
	// nothing was submitted.
	Declined Status = "declined"
	// Failed means the swap could not be built, signed or submitted.
	Failed Status = "failed"
)

// Result is the outcome of a swap. Err holds the reason for declined and
// failed swaps.
type Result struct {
	Status     Status
	Submission custody.Submission
	Err        error
}
