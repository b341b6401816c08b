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

package custody

import (
	"fmt"

	"github.com/stellar/go/network"
)

// Mode is the deployment mode of the ledger network.
type Mode string

const (
	ModeTest   Mode = "test"
	ModePublic Mode = "public"
)

// NetworkParams holds the parameters for each supported deployment mode.
var NetworkParams = make(map[Mode]Params)

// Params are the network-dependent parameters needed to build and submit
// transactions.
type Params struct {
	Mode       Mode
	Passphrase string
	Horizon    string
	Faucet     bool
}

// ParseMode parses a textual deployment mode.
func ParseMode(text string) (Mode, error) {
	mode := Mode(text)
	_, ok := NetworkParams[mode]
	if !ok {
		return "", fmt.Errorf("unknown network mode (%s)", text)
	}
	return mode, nil
}

func init() {

	testnet := Params{
		Mode:       ModeTest,
		Passphrase: network.TestNetworkPassphrase,
		Horizon:    "https://horizon-testnet.stellar.org/",
		Faucet:     true,
	}
	NetworkParams[testnet.Mode] = testnet

	pubnet := Params{
		Mode:       ModePublic,
		Passphrase: network.PublicNetworkPassphrase,
		Horizon:    "https://horizon.stellar.org/",
		Faucet:     false,
	}
	NetworkParams[pubnet.Mode] = pubnet
}
