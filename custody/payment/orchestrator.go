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

package payment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/custody/signer"
	"github.com/optakt/stellar-custody/custody/validator"
	"github.com/optakt/stellar-custody/models/custody"
)

// Orchestrator assembles batches of payments into single envelopes, signs
// them and submits them, optionally wrapped in a fee-bump envelope.
type Orchestrator struct {
	log      zerolog.Logger
	params   custody.Params
	ledger   Ledger
	submit   Submitter
	registry Registry
	build    *envelope.Builder
}

// New creates a new payment orchestrator for the network with the given
// parameters.
func New(log zerolog.Logger, params custody.Params, ledger Ledger, submit Submitter, registry Registry, opts ...Option) *Orchestrator {

	cfg := DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	o := Orchestrator{
		log:      log.With().Str("component", "payment").Logger(),
		params:   params,
		ledger:   ledger,
		submit:   submit,
		registry: registry,
		build:    envelope.NewBuilder(envelope.WithTimeout(cfg.Timeout)),
	}

	return &o
}

// transfer is a validated payment intent.
type transfer struct {
	asset     custody.Asset
	amount    decimal.Decimal
	recipient string
	key       *keypair.Full
}

// SendPayment sends all payments of the request in a single envelope. If any
// payment is not covered by the sender's balance, nothing is submitted.
// Recipients that don't trust an issued asset yet get a trustline in the
// same envelope, provided their secret was given.
func (o *Orchestrator) SendPayment(ctx context.Context, req Request) (Result, error) {

	tx, _, err := o.prepare(ctx, req.Payments, req.Secret)
	if err != nil {
		return Result{}, err
	}

	if req.FeeBump {
		return Result{Transaction: tx}, nil
	}

	sub := o.submit.Transaction(ctx, tx)

	return Result{Submission: sub}, nil
}

// SendHighPriorityPayment sends all payments of the request in a single
// envelope, wrapped into a fee-bump envelope that pays the maximum fee
// currently accepted by the network.
func (o *Orchestrator) SendHighPriorityPayment(ctx context.Context, req HighPriorityRequest) (custody.Submission, error) {

	// The fee payer is resolved first, so that a misconfigured commission role
	// is reported before anything is loaded.
	var payer string
	var signers []keypair.KP
	if req.PayCommission {
		role := o.registry.CommissionBy()
		if role == "" {
			return custody.Submission{}, failure.InvalidAccountRole{
				Description: failure.NewDescription("no role configured", failure.WithString("slot", "commission_by")),
			}
		}
		var err error
		payer, err = o.registry.Lookup(role)
		if err != nil {
			return custody.Submission{}, fmt.Errorf("could not look up commission account: %w", err)
		}
		signers, err = o.registry.Signers(role)
		if err != nil {
			return custody.Submission{}, fmt.Errorf("could not get commission signers: %w", err)
		}
	}

	inner, fees, err := o.prepare(ctx, req.Payments, req.Secret)
	if err != nil {
		return custody.Submission{}, err
	}

	if !req.PayCommission {
		sender, err := signer.Parse("secret", req.Secret)
		if err != nil {
			return custody.Submission{}, err
		}
		payer = sender.Address()
		signers = []keypair.KP{sender}
	}

	bump, err := o.build.FeeBump(inner, payer, fees)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not build fee-bump: %w", err)
	}

	bump, err = signer.SignFeeBump(bump, o.params.Passphrase, signers...)
	if err != nil {
		return custody.Submission{}, fmt.Errorf("could not sign fee-bump: %w", err)
	}

	o.log.Debug().
		Str("payer", payer).
		Int64("base_fee", bump.BaseFee()).
		Msg("fee-bump built")

	return o.submit.FeeBump(ctx, bump), nil
}

// prepare validates the payments and builds the signed envelope for them. It
// also returns the fees the envelope was priced with.
func (o *Orchestrator) prepare(ctx context.Context, intents []custody.PaymentIntent, secret string) (*txnbuild.Transaction, custody.Fees, error) {

	if len(intents) == 0 {
		return nil, custody.Fees{}, failure.EmptyPaymentList{
			Description: failure.NewDescription("at least one payment is required"),
		}
	}

	sender, err := signer.Parse("secret", secret)
	if err != nil {
		return nil, custody.Fees{}, err
	}

	transfers := make([]transfer, 0, len(intents))
	for index, intent := range intents {
		tr, err := parseIntent(intent)
		if err != nil {
			return nil, custody.Fees{}, fmt.Errorf("invalid payment %d: %w", index, err)
		}
		transfers = append(transfers, tr)
	}

	var source custody.Account
	var fees custody.Fees
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		source, err = o.ledger.Account(gctx, sender.Address())
		if err != nil {
			return fmt.Errorf("could not load sender: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		fees, err = o.ledger.Fees(gctx)
		if err != nil {
			return fmt.Errorf("could not load fees: %w", err)
		}
		return nil
	})
	err = group.Wait()
	if err != nil {
		return nil, custody.Fees{}, err
	}

	type line struct {
		recipient string
		asset     custody.Asset
	}
	seen := make(map[line]struct{})
	recipients := make(map[string]custody.Account)
	signers := []keypair.KP{sender}
	plan := envelope.Plan{}.WithMemo(intents[0].Memo)
	for _, tr := range transfers {

		// Each payment is checked against the balance on its own, not against
		// the sum of all payments of the same asset.
		if !validator.Sufficient(source, tr.asset, tr.amount) {
			return nil, custody.Fees{}, failure.InsufficientBalance{
				Description: failure.NewDescription("sender balance does not cover the payment"),
				Address:     source.Address,
				Asset:       tr.asset.Descriptor(),
				Amount:      tr.amount,
			}
		}

		key := line{recipient: tr.recipient, asset: tr.asset}
		_, done := seen[key]
		if !tr.asset.IsNative() && !done {
			recipient, ok := recipients[tr.recipient]
			if !ok {
				recipient, err = o.ledger.Account(ctx, tr.recipient)
				if err != nil {
					return nil, custody.Fees{}, fmt.Errorf("could not load recipient: %w", err)
				}
				recipients[tr.recipient] = recipient
			}

			if !validator.Trusted(recipient, tr.asset) && tr.key != nil {
				op, err := envelope.ChangeTrust(tr.recipient, tr.asset, "")
				if err != nil {
					return nil, custody.Fees{}, fmt.Errorf("could not create recipient trustline: %w", err)
				}
				plan = plan.With(op)
				signers = append(signers, tr.key)
			}
			seen[key] = struct{}{}
		}

		plan = plan.With(envelope.Payment("", tr.recipient, tr.asset, tr.amount))
	}

	tx, err := o.build.Build(source, fees, plan)
	if err != nil {
		return nil, custody.Fees{}, fmt.Errorf("could not build payments: %w", err)
	}

	tx, err = signer.Sign(tx, o.params.Passphrase, signers...)
	if err != nil {
		return nil, custody.Fees{}, fmt.Errorf("could not sign payments: %w", err)
	}

	o.log.Debug().
		Str("sender", source.Address).
		Int("payments", len(transfers)).
		Int("operations", plan.Len()).
		Msg("payments built")

	return tx, fees, nil
}

func parseIntent(intent custody.PaymentIntent) (transfer, error) {

	a, err := asset.Resolve(intent.Asset)
	if err != nil {
		return transfer{}, fmt.Errorf("could not resolve asset: %w", err)
	}

	err = envelope.CheckMemo(intent.Memo)
	if err != nil {
		return transfer{}, err
	}

	amount, err := asset.ParseAmount(intent.Amount)
	if err != nil {
		return transfer{}, fmt.Errorf("could not parse amount: %w", err)
	}

	tr := transfer{
		asset:  a,
		amount: amount,
	}

	switch {

	case intent.DestinationSecret != "":
		kp, err := signer.Parse("destination_secret", intent.DestinationSecret)
		if err != nil {
			return transfer{}, err
		}
		if intent.Destination != "" && intent.Destination != kp.Address() {
			return transfer{}, failure.InvalidKey{
				Field:       "destination",
				Description: failure.NewDescription("destination does not match destination secret"),
			}
		}
		tr.recipient = kp.Address()
		tr.key = kp

	case intent.Destination != "":
		_, err := keypair.ParseAddress(intent.Destination)
		if err != nil {
			return transfer{}, failure.InvalidKey{
				Field:       "destination",
				Description: failure.NewDescription("could not parse destination address", failure.WithErr(err)),
			}
		}
		tr.recipient = intent.Destination

	default:
		return transfer{}, failure.InvalidKey{
			Field:       "destination",
			Description: failure.NewDescription("payment needs a destination or a destination secret"),
		}
	}

	return tr, nil
}
