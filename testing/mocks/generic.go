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

package mocks

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/models/custody"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test custody components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericPassphrase = network.TestNetworkPassphrase

	GenericSequence = int64(42)

	GenericFees = custody.Fees{
		Base: 100,
		Max:  5000,
	}

	GenericHash = "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"

	GenericAmount = decimal.RequireFromString("100")
)

// GenericKeypair returns a deterministic full keypair. Keypairs with different
// indices are distinct.
func GenericKeypair(index int) *keypair.Full {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(index + 1)
	}

	kp, err := keypair.FromRawSeed(seed)
	if err != nil {
		panic(err)
	}

	return kp
}

func GenericKeypairs(number int) []*keypair.Full {
	kps := make([]*keypair.Full, 0, number)
	for i := 0; i < number; i++ {
		kps = append(kps, GenericKeypair(i))
	}
	return kps
}

func GenericAddress(index int) string {
	return GenericKeypair(index).Address()
}

func GenericSecret(index int) string {
	return GenericKeypair(index).Seed()
}

// GenericAsset returns a deterministic issued asset, issued by the account of
// the generic keypair at index 9.
func GenericAsset(code string) custody.Asset {
	return custody.Asset{
		Code:   code,
		Issuer: GenericAddress(9),
	}
}

// GenericAccount returns an account snapshot for the generic keypair at the
// given index, holding the given balances in addition to the generic native
// balance.
func GenericAccount(index int, balances ...custody.Balance) custody.Account {
	native := custody.Balance{
		Asset:  custody.Native(),
		Amount: GenericAmount,
	}

	lines := make([]custody.Balance, 0, len(balances)+1)
	lines = append(lines, balances...)
	lines = append(lines, native)

	account := custody.Account{
		Address:  GenericAddress(index),
		Sequence: GenericSequence,
		Balances: lines,
	}

	return account
}

func GenericBalance(asset custody.Asset, amount string) custody.Balance {
	return custody.Balance{
		Asset:  asset,
		Amount: decimal.RequireFromString(amount),
		Limit:  decimal.RequireFromString("922337203685.4775807"),
	}
}

// GenericTransaction returns an unsigned transaction with a single native
// payment from the generic account at index 0 to the one at index 1.
func GenericTransaction() *txnbuild.Transaction {
	source := txnbuild.NewSimpleAccount(GenericAddress(0), GenericSequence)
	params := txnbuild.TransactionParams{
		SourceAccount:        &source,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: GenericAddress(1),
				Amount:      "10",
				Asset:       txnbuild.NativeAsset{},
			},
		},
	}

	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		panic(err)
	}

	return tx
}
