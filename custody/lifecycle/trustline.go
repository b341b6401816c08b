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
	"github.com/optakt/stellar-custody/custody/validator"
	"github.com/optakt/stellar-custody/models/custody"
)

// ValidateTrustLine makes sure the wallet of the given secret trusts the
// requested asset. Nothing is submitted when it already does. Otherwise, the
// trustline is established in a transaction paid for by the master account,
// which can also remove one existing trustline of the wallet.
func (m *Manager) ValidateTrustLine(ctx context.Context, req TrustlineRequest) (custody.Submission, error) {

	target, err := asset.Resolve(req.Asset)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not resolve asset: %w", err)
	}

	var revoke custody.Asset
	if req.Revoke != "" {
		revoke, err = asset.Resolve(req.Revoke)
		if err != nil {
			return custody.Submission{}, fmt.Errorf("could not resolve revoked asset: %w", err)
		}
	}

	wallet, err := signer.Parse("secret", req.Secret)
	if err != nil {
		return custody.Submission{}, err
	}

	role := m.registry.Master()
	if role == "" {
		return custody.Submission{}, missingRole("master")
	}
	master, err := m.registry.Lookup(role)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not look up master account: %w", err)
	}
	signers, err := m.registry.Signers(role)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not get master signers: %w", err)
	}

	account, err := m.ledger.Account(ctx, wallet.Address())
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not load wallet: %w", err)
	}
	if validator.Trusted(account, target) {
		m.log.Debug().Str("address", account.Address).Str("asset", target.Descriptor()).Msg("trustline already established")
		return custody.Submission{}, nil
	}

	var plan envelope.Plan
	removed, ok := revocation(account, req, revoke)
	if ok {
		op, err := envelope.ChangeTrust(account.Address, removed, "0")
		if err != nil {
			return custody.Submission{}, fmt.Errorf("could not create trustline removal: %w", err)
		}
		plan = plan.With(op)
	}
	op, err := envelope.ChangeTrust(account.Address, target, "")
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not create trustline: %w", err)
	}
	plan = plan.With(op)

	source, fees, err := m.snapshot(ctx, master)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not load master account: %w", err)
	}

	tx, err := m.build.Build(source, fees, plan)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not build trustline change: %w", err)
	}

	signers = append(signers, keypair.KP(wallet))
	tx, err = signer.Sign(tx, m.params.Passphrase, signers...)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not sign trustline change: %w", err)
	}

	m.log.Debug().
		Str("address", account.Address).
		Str("asset", target.Descriptor()).
		Bool("revoke", ok).
		Msg("trustline change built")

	return m.submit.Transaction(ctx, tx), nil
}

// revocation selects the trustline of the wallet to remove, if any.
func revocation(account custody.Account, req TrustlineRequest, revoke custody.Asset) (custody.Asset, bool) {

	if req.Keep {
		return custody.Asset{}, false
	}

	if req.Revoke != "" {
		if revoke.IsNative() {
			return custody.Asset{}, false
		}
		balance, ok := account.Balance(revoke)
		if !ok {
			return custody.Asset{}, false
		}
		return balance.Asset, true
	}

	issued := account.Issued()
	if len(issued) == 0 {
		return custody.Asset{}, false
	}

	return issued[0].Asset, true
}
