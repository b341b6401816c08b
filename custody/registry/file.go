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

package registry

// File is the layout of a registry configuration file.
type File struct {
	Mode         string      `toml:"mode"`
	CreateBy     string      `toml:"create_by"`
	CommissionBy string      `toml:"commission_by"`
	Master       string      `toml:"master"`
	Accounts     []Account   `toml:"account"`
	Trustlines   []Trustline `toml:"trustline"`
}

// Account is a single role entry of a registry file. Either the address or
// the secret can be omitted, but not both.
type Account struct {
	Role      string   `toml:"role"`
	Address   string   `toml:"address"`
	Secret    string   `toml:"secret"`
	Cosigners []string `toml:"cosigners"`
}

// Trustline holds the asset descriptor of a baseline trustline for each
// network mode.
type Trustline struct {
	Test   string `toml:"test"`
	Public string `toml:"public"`
}

func (t Trustline) descriptor(mode string) string {
	switch mode {
	case "public":
		return t.Public
	default:
		return t.Test
	}
}
