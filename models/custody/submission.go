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
	"github.com/optakt/stellar-custody/custody/failure"
)

// Submission is the outcome of handing an envelope to the network. Network
// refusals are carried here as data rather than returned as errors.
//
// A submission is in exactly one of three states:
//   - accepted: Hash is set, Rejection is nil;
//   - rejected: Rejection is set;
//   - noop: neither is set, no transaction was needed.
type Submission struct {
	Hash      string                    `json:"hash,omitempty"`
	Rejection *failure.NetworkRejection `json:"rejection,omitempty"`
}

// Accepted returns a submission for a transaction the network accepted.
func Accepted(hash string) Submission {
	return Submission{Hash: hash}
}

// Rejected returns a submission for an envelope the network refused.
func Rejected(rejection failure.NetworkRejection) Submission {
	return Submission{Rejection: &rejection}
}

// Accepted returns whether the network accepted the envelope.
func (s Submission) Accepted() bool {
	return s.Rejection == nil && s.Hash != ""
}

// Rejected returns whether the network refused the envelope.
func (s Submission) Rejected() bool {
	return s.Rejection != nil
}

// Noop returns whether no envelope had to be submitted.
func (s Submission) Noop() bool {
	return s.Rejection == nil && s.Hash == ""
}
