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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

const (
	labelKind    = "kind"
	labelOutcome = "outcome"

	kindTransaction = "transaction"
	kindFeeBump     = "fee_bump"
	kindFund        = "fund"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// MetricsSubmitter wraps the submitter and records metrics for the envelopes
// it submits.
type MetricsSubmitter struct {
	submit *Submitter

	submissions *prometheus.CounterVec
}

// NewMetricsSubmitter creates a new submitter that counts submissions by kind
// and outcome, registering its metrics with the given registerer.
func NewMetricsSubmitter(submit *Submitter, reg prometheus.Registerer) *MetricsSubmitter {
	submissionOpts := prometheus.CounterOpts{
		Name: "custody_submissions_total",
		Help: "the number of envelopes submitted to the ledger network",
	}
	submissions := promauto.With(reg).NewCounterVec(submissionOpts, []string{labelKind, labelOutcome})

	m := MetricsSubmitter{
		submit: submit,

		submissions: submissions,
	}

	return &m
}

// Transaction submits a signed transaction envelope.
func (m *MetricsSubmitter) Transaction(ctx context.Context, tx *txnbuild.Transaction) custody.Submission {
	sub := m.submit.Transaction(ctx, tx)
	m.count(kindTransaction, sub)
	return sub
}

// FeeBump submits a signed fee-bump envelope.
func (m *MetricsSubmitter) FeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) custody.Submission {
	sub := m.submit.FeeBump(ctx, tx)
	m.count(kindFeeBump, sub)
	return sub
}

// Fund asks the test network faucet to create and fund the given address.
func (m *MetricsSubmitter) Fund(ctx context.Context, address string) custody.Submission {
	sub := m.submit.Fund(ctx, address)
	m.count(kindFund, sub)
	return sub
}

func (m *MetricsSubmitter) count(kind string, sub custody.Submission) {
	outcome := outcomeAccepted
	if sub.Rejected() {
		outcome = outcomeRejected
	}
	m.submissions.WithLabelValues(kind, outcome).Inc()
}
