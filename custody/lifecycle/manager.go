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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stellar/go/keypair"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

// Manager creates, retires and maintains custodial accounts.
type Manager struct {
	log      zerolog.Logger
	cfg      Config
	params   custody.Params
	ledger   Ledger
	submit   Submitter
	registry Registry
	build    *envelope.Builder
	generate func() (*keypair.Full, error)
}

// New creates a new lifecycle manager for the network with the given
// parameters.
func New(log zerolog.Logger, params custody.Params, ledger Ledger, submit Submitter, registry Registry, opts ...Option) *Manager {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Manager{
		log:      log.With().Str("component", "lifecycle").Logger(),
		cfg:      cfg,
		params:   params,
		ledger:   ledger,
		submit:   submit,
		registry: registry,
		build:    envelope.NewBuilder(envelope.WithTimeout(cfg.Timeout)),
		generate: keypair.Random,
	}

	return &m
}

// snapshot loads the given account and the current fees concurrently.
func (m *Manager) snapshot(ctx context.Context, address string) (custody.Account, custody.Fees, error) {

	var account custody.Account
	var fees custody.Fees
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		account, err = m.ledger.Account(ctx, address)
		if err != nil {
			return fmt.Errorf("could not load account: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		fees, err = m.ledger.Fees(ctx)
		if err != nil {
			return fmt.Errorf("could not load fees: %w", err)
		}
		return nil
	})

	err := group.Wait()
	if err != nil {
		return custody.Account{}, custody.Fees{}, err
	}

	return account, fees, nil
}

func missingRole(slot string) error {
	return failure.InvalidAccountRole{
		Description: failure.NewDescription("no role configured", failure.WithString("slot", slot)),
	}
}
