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

package asset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

const separator = ":"

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,12}$`)

// Resolve parses an asset descriptor into an asset. The descriptor is either
// the native marker, in any casing, or a `CODE:ISSUER` pair.
func Resolve(descriptor string) (custody.Asset, error) {

	trimmed := strings.TrimSpace(descriptor)
	if strings.EqualFold(trimmed, custody.NativeMarker) {
		return custody.Native(), nil
	}

	parts := strings.Split(trimmed, separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return custody.Asset{}, failure.MalformedAssetDescriptor{
			Description: failure.NewDescription("descriptor needs exactly one code and one issuer",
				failure.WithInt("parts", len(parts)),
			),
			Descriptor: descriptor,
		}
	}

	code, issuer := parts[0], parts[1]
	if !codePattern.MatchString(code) {
		return custody.Asset{}, failure.MalformedAssetDescriptor{
			Description: failure.NewDescription("asset code must have 1 to 12 alphanumeric characters",
				failure.WithString("code", code),
			),
			Descriptor: descriptor,
		}
	}

	_, err := keypair.ParseAddress(issuer)
	if err != nil {
		return custody.Asset{}, failure.MalformedAssetDescriptor{
			Description: failure.NewDescription("asset issuer is not a valid address",
				failure.WithString("issuer", issuer),
				failure.WithErr(err),
			),
			Descriptor: descriptor,
		}
	}

	asset := custody.Asset{
		Code:   code,
		Issuer: issuer,
	}

	return asset, nil
}

// MustResolve resolves the descriptor and panics if it is malformed. It is
// meant for static configuration only.
func MustResolve(descriptor string) custody.Asset {
	asset, err := Resolve(descriptor)
	if err != nil {
		panic(fmt.Sprintf("could not resolve asset: %s", err))
	}
	return asset
}
