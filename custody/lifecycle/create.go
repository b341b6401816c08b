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

	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/signer"
	"github.com/optakt/stellar-custody/models/custody"
)

// CreateAccount creates and funds a fresh account, sets its home domain and
// establishes the baseline trustlines of the network, plus the requested
// extra trustline, all in a single transaction.
func (m *Manager) CreateAccount(ctx context.Context, req CreateRequest) (Created, error) {

	var extra custody.Asset
	if req.Trustline != "" {
		var err error
		extra, err = asset.Resolve(req.Trustline)
		if err != nil {
			return Created{}, fmt.Errorf("could not resolve trustline: %w", err)
		}
	}

	// The funding account is either given explicitly, or it is the account
	// holding the creation role in the registry.
	var funder string
	var signers []keypair.KP
	if req.Secret != "" {
		kp, err := signer.Parse("secret", req.Secret)
		if err != nil {
			return Created{}, err
		}
		funder = kp.Address()
		signers = []keypair.KP{kp}
	} else {
		role := m.registry.CreateBy()
		if role == "" {
			return Created{}, missingRole("create_by")
		}
		var err error
		funder, err = m.registry.Lookup(role)
		if err != nil {
			return Created{}, fmt.Errorf("could not look up funding account: %w", err)
		}
		signers, err = m.registry.Signers(role)
		if err != nil {
			return Created{}, fmt.Errorf("could not get funding signers: %w", err)
		}
	}

	kp, err := m.generate()
	if err != nil {
		return Created{}, fmt.Errorf("could not generate keypair: %w", err)
	}
	address := kp.Address()

	plan := envelope.Plan{}.With(envelope.CreateAccount("", address, m.cfg.StartingBalance))
	if m.cfg.HomeDomain != "" {
		plan = plan.With(envelope.HomeDomain(address, m.cfg.HomeDomain))
	}

	trustlines := m.registry.Trustlines()
	if !extra.IsNative() && !contains(trustlines, extra) {
		trustlines = append(trustlines, extra)
	}
	for _, trustline := range trustlines {
		op, err := envelope.ChangeTrust(address, trustline, "")
		if err != nil {
			return Created{}, fmt.Errorf("could not create trustline operation: %w", err)
		}
		plan = plan.With(op)
	}

	source, fees, err := m.snapshot(ctx, funder)
	if err != nil {
		return Created{}, fmt.Errorf("could not load funding account: %w", err)
	}

	tx, err := m.build.Build(source, fees, plan)
	if err != nil {
		return Created{}, fmt.Errorf("could not build account creation: %w", err)
	}

	signers = append([]keypair.KP{kp}, signers...)
	tx, err = signer.Sign(tx, m.params.Passphrase, signers...)
	if err != nil {
		return Created{}, fmt.Errorf("could not sign account creation: %w", err)
	}

	m.log.Debug().
		Str("address", address).
		Str("funder", funder).
		Int("trustlines", len(trustlines)).
		Msg("account creation built")

	sub := m.submit.Transaction(ctx, tx)
	created := Created{
		Keypair:    kp,
		Submission: sub,
	}

	return created, nil
}

// CreateDemoAccount creates a fresh account funded by the faucet of the test
// network. On networks without a faucet, only the keypair is generated.
func (m *Manager) CreateDemoAccount(ctx context.Context) (Created, error) {

	kp, err := m.generate()
	if err != nil {
		return Created{}, fmt.Errorf("could not generate keypair: %w", err)
	}

	if !m.params.Faucet {
		m.log.Debug().Str("address", kp.Address()).Str("mode", string(m.params.Mode)).Msg("no faucet, skipping funding")
		return Created{Keypair: kp}, nil
	}

	created := Created{
		Keypair:    kp,
		Submission: m.submit.Fund(ctx, kp.Address()),
	}

	return created, nil
}

func contains(assets []custody.Asset, asset custody.Asset) bool {
	for _, candidate := range assets {
		if candidate.Equal(asset) {
			return true
		}
	}
	return false
}
