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
	"errors"

	"github.com/rs/zerolog"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

// Submitter submits signed envelopes to the ledger network. Submission
// failures never surface as errors; they are returned as rejected
// submissions, so that callers keep what they built before submitting.
type Submitter struct {
	log zerolog.Logger
	api API
}

// New creates a new submitter on top of the given network API.
func New(log zerolog.Logger, api API) *Submitter {

	s := Submitter{
		log: log.With().Str("component", "submitter").Logger(),
		api: api,
	}

	return &s
}

// Transaction submits a signed transaction envelope.
func (s *Submitter) Transaction(ctx context.Context, tx *txnbuild.Transaction) custody.Submission {
	hash, err := s.api.SubmitTransaction(ctx, tx)
	return s.submission("transaction", hash, err)
}

// FeeBump submits a signed fee-bump envelope.
func (s *Submitter) FeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) custody.Submission {
	hash, err := s.api.SubmitFeeBump(ctx, tx)
	return s.submission("fee_bump", hash, err)
}

// Fund asks the test network faucet to create and fund the given address.
func (s *Submitter) Fund(ctx context.Context, address string) custody.Submission {
	hash, err := s.api.Fund(ctx, address)
	return s.submission("fund", hash, err)
}

func (s *Submitter) submission(kind string, hash string, err error) custody.Submission {

	if err == nil {
		s.log.Info().Str("kind", kind).Str("hash", hash).Msg("submission accepted")
		return custody.Accepted(hash)
	}

	var rejection failure.NetworkRejection
	if !errors.As(err, &rejection) {
		rejection = failure.NetworkRejection{
			Description: failure.NewDescription("could not submit envelope",
				failure.WithErr(err),
			),
		}
	}

	s.log.Warn().
		Str("kind", kind).
		Int("status", rejection.Status).
		Str("result", rejection.Transaction).
		Strs("operations", rejection.Operations).
		Str("reason", rejection.Description.String()).
		Msg("submission rejected")

	return custody.Rejected(rejection)
}
