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

// NativeMarker is the asset descriptor that designates the network's native
// asset.
const NativeMarker = "native"

// Asset identifies either the native asset of the network or an issued asset.
// The native asset has neither code nor issuer.
type Asset struct {
	Code   string
	Issuer string
}

// Native returns the native asset.
func Native() Asset {
	return Asset{}
}

// IsNative returns whether the asset is the network's native asset.
func (a Asset) IsNative() bool {
	return a.Code == "" && a.Issuer == ""
}

// Equal returns whether both code and issuer match.
func (a Asset) Equal(other Asset) bool {
	return a.Code == other.Code && a.Issuer == other.Issuer
}

// SameCode returns whether both assets share the same code, regardless of
// their issuer. Two native assets share the same code.
func (a Asset) SameCode(other Asset) bool {
	if a.IsNative() || other.IsNative() {
		return a.IsNative() && other.IsNative()
	}
	return a.Code == other.Code
}

// Descriptor renders the asset in the textual format understood by the asset
// resolver.
func (a Asset) Descriptor() string {
	if a.IsNative() {
		return NativeMarker
	}
	return a.Code + ":" + a.Issuer
}

func (a Asset) String() string {
	return a.Descriptor()
}
