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

package signer

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/custody/failure"
)

// Sign attaches a signature from every signer to the transaction and returns
// the signed copy. Signers are applied in the given order, and repeated
// addresses only sign once. If any signer lacks its private key, no signature
// is applied and a failure.MissingPrivateKey error is returned.
func Sign(tx *txnbuild.Transaction, passphrase string, signers ...keypair.KP) (*txnbuild.Transaction, error) {

	full, err := collect(signers)
	if err != nil {
		return nil, err
	}

	signed, err := tx.Sign(passphrase, full...)
	if err != nil {
		return nil, fmt.Errorf("could not sign transaction: %w", err)
	}

	return signed, nil
}

// SignFeeBump does the same as Sign, but for fee-bump envelopes.
func SignFeeBump(tx *txnbuild.FeeBumpTransaction, passphrase string, signers ...keypair.KP) (*txnbuild.FeeBumpTransaction, error) {

	full, err := collect(signers)
	if err != nil {
		return nil, err
	}

	signed, err := tx.Sign(passphrase, full...)
	if err != nil {
		return nil, fmt.Errorf("could not sign fee-bump transaction: %w", err)
	}

	return signed, nil
}

func collect(signers []keypair.KP) ([]*keypair.Full, error) {

	seen := make(map[string]struct{}, len(signers))
	full := make([]*keypair.Full, 0, len(signers))
	for index, signer := range signers {

		if signer == nil {
			return nil, failure.MissingPrivateKey{
				Index:       index,
				Description: failure.NewDescription("signer is missing"),
			}
		}

		address := signer.Address()
		kp, ok := signer.(*keypair.Full)
		if !ok {
			return nil, failure.MissingPrivateKey{
				Address:     address,
				Index:       index,
				Description: failure.NewDescription("signer has no private key"),
			}
		}

		_, dup := seen[address]
		if dup {
			continue
		}
		seen[address] = struct{}{}

		full = append(full, kp)
	}

	return full, nil
}

// Parse parses the secret seed given for the named field into a keypair. An
// invalid seed yields a failure.InvalidKey error.
func Parse(field string, secret string) (*keypair.Full, error) {
	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, failure.InvalidKey{
			Field:       field,
			Description: failure.NewDescription("could not parse secret seed", failure.WithErr(err)),
		}
	}
	return kp, nil
}
