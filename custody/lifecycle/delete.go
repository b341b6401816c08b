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

	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/custody/signer"
	"github.com/optakt/stellar-custody/models/custody"
)

// DeleteAccount retires the account of the given secret. All of its issued
// balances are sent to the account holding the creation role, its trustlines
// are removed, and the account is finally merged into the same destination.
func (m *Manager) DeleteAccount(ctx context.Context, secret string) (custody.Submission, error) {

	role := m.registry.CreateBy()
	if role == "" {
		return custody.Submission{}, failure.NoDestinationRole{
			Description: failure.NewDescription("no role configured to receive the funds of retired accounts"),
		}
	}
	destination, err := m.registry.Lookup(role)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not look up destination: %w", err)
	}

	kp, err := signer.Parse("secret", secret)
	if err != nil {
		return custody.Submission{}, err
	}

	account, fees, err := m.snapshot(ctx, kp.Address())
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not load account to delete: %w", err)
	}

	var plan envelope.Plan
	for _, balance := range account.Issued() {
		if !balance.Amount.IsZero() {
			plan = plan.With(envelope.Payment("", destination, balance.Asset, balance.Amount))
		}
		op, err := envelope.ChangeTrust("", balance.Asset, "0")
		if err != nil {
			return custody.Submission{}, fmt.Errorf("could not create trustline removal: %w", err)
		}
		plan = plan.With(op)
	}
	plan = plan.With(envelope.Merge("", destination))

	tx, err := m.build.Build(account, fees, plan)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not build account deletion: %w", err)
	}

	tx, err = signer.Sign(tx, m.params.Passphrase, kp)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not sign account deletion: %w", err)
	}

	m.log.Debug().
		Str("address", account.Address).
		Str("destination", destination).
		Int("operations", plan.Len()).
		Msg("account deletion built")

	return m.submit.Transaction(ctx, tx), nil
}
