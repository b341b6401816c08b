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
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/custody/signer"
	"github.com/optakt/stellar-custody/custody/validator"
	"github.com/optakt/stellar-custody/models/custody"
)

// Orchestrator settles two-leg swaps between custodial accounts atomically,
// in a single envelope.
type Orchestrator struct {
	log    zerolog.Logger
	params custody.Params
	ledger Ledger
	submit Submitter
	build  *envelope.Builder
}

// New creates a new swap orchestrator for the network with the given
// parameters. Envelopes are valid for the given timeout.
func New(log zerolog.Logger, params custody.Params, ledger Ledger, submit Submitter, timeout time.Duration) *Orchestrator {

	o := Orchestrator{
		log:    log.With().Str("component", "swap").Logger(),
		params: params,
		ledger: ledger,
		submit: submit,
		build:  envelope.NewBuilder(envelope.WithTimeout(timeout)),
	}

	return &o
}

// SwapPayment pays the sender's asset to the recipient and the recipient's
// asset back to the sender, in one envelope signed by both. Only the sender's
// balance is checked before submission; the recipient's leg is left to the
// network. It never returns an error: the outcome and its reason are in the
// result.
func (o *Orchestrator) SwapPayment(ctx context.Context, sender custody.SwapParty, recipient custody.SwapParty, memo string) Result {

	result := o.swap(ctx, sender, recipient, memo)

	log := o.log.Info()
	if result.Status != Settled {
		log = o.log.Warn().Err(result.Err)
	}
	log.Str("status", string(result.Status)).Str("hash", result.Submission.Hash).Msg("swap processed")

	return result
}

func (o *Orchestrator) swap(ctx context.Context, sender custody.SwapParty, recipient custody.SwapParty, memo string) Result {

	senderKey, err := signer.Parse("sender", sender.Secret)
	if err != nil {
		return failed(err)
	}
	recipientKey, err := signer.Parse("recipient", recipient.Secret)
	if err != nil {
		return failed(err)
	}

	senderAsset, senderAmount, err := parseLeg(sender)
	if err != nil {
		return failed(fmt.Errorf("invalid sender leg: %w", err))
	}
	recipientAsset, recipientAmount, err := parseLeg(recipient)
	if err != nil {
		return failed(fmt.Errorf("invalid recipient leg: %w", err))
	}

	err = envelope.CheckMemo(memo)
	if err != nil {
		return failed(err)
	}

	var source custody.Account
	var fees custody.Fees
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		source, err = o.ledger.Account(gctx, senderKey.Address())
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
		return failed(err)
	}

	if !validator.Sufficient(source, senderAsset, senderAmount) {
		return Result{
			Status: Declined,
			Err: failure.InsufficientBalance{
				Description: failure.NewDescription("sender balance does not cover the swap"),
				Address:     source.Address,
				Asset:       senderAsset.Descriptor(),
				Amount:      senderAmount,
			},
		}
	}

	plan := envelope.Plan{}.WithMemo(memo).With(
		envelope.Payment("", recipientKey.Address(), senderAsset, senderAmount),
		envelope.Payment(recipientKey.Address(), senderKey.Address(), recipientAsset, recipientAmount),
	)

	tx, err := o.build.Build(source, fees, plan)
	if err != nil {
		return failed(fmt.Errorf("could not build swap: %w", err))
	}

	tx, err = signer.Sign(tx, o.params.Passphrase, senderKey, recipientKey)
	if err != nil {
		return failed(fmt.Errorf("could not sign swap: %w", err))
	}

	sub := o.submit.Transaction(ctx, tx)
	if sub.Rejected() {
		return Result{
			Status:     Failed,
			Submission: sub,
			Err:        *sub.Rejection,
		}
	}

	return Result{
		Status:     Settled,
		Submission: sub,
	}
}

func parseLeg(party custody.SwapParty) (custody.Asset, decimal.Decimal, error) {

	a, err := asset.Resolve(party.Asset)
	if err != nil {
		return custody.Asset{}, decimal.Decimal{}, err
	}

	amount, err := asset.ParseAmount(party.Amount)
	if err != nil {
		return custody.Asset{}, decimal.Decimal{}, err
	}

	return a, amount, nil
}

func failed(err error) Result {
	return Result{
		Status: Failed,
		Err:    err,
	}
}
