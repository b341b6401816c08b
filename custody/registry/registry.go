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

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

type entry struct {
	address   string
	key       *keypair.Full
	cosigners []custody.Role
}

// Registry maps the roles of custodial accounts to their addresses and
// signing keys. It also holds the configured role slots and the baseline
// trustlines for its network mode. A registry is read-only once created.
type Registry struct {
	mode         custody.Mode
	entries      map[custody.Role]entry
	createBy     custody.Role
	commissionBy custody.Role
	master       custody.Role
	trustlines   []custody.Asset
}

// Load reads and validates the registry file at the given path.
func Load(path string) (*Registry, error) {

	var file File
	_, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("could not decode registry file: %w", err)
	}

	return New(file)
}

// Decode parses and validates registry configuration from its TOML text.
func Decode(data string) (*Registry, error) {

	var file File
	_, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("could not decode registry: %w", err)
	}

	return New(file)
}

// New validates the given registry file and creates a registry from it. All
// invalid entries are reported together in the returned error.
func New(file File) (*Registry, error) {

	if file.Mode == "" {
		file.Mode = string(custody.ModeTest)
	}

	var merr *multierror.Error
	mode, err := custody.ParseMode(file.Mode)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	r := Registry{
		mode:         mode,
		entries:      make(map[custody.Role]entry, len(file.Accounts)),
		createBy:     custody.Role(file.CreateBy),
		commissionBy: custody.Role(file.CommissionBy),
		master:       custody.Role(file.Master),
	}

	seen := make(map[custody.Role]struct{}, len(file.Accounts))
	for index, account := range file.Accounts {
		role := custody.Role(account.Role)
		if role == "" {
			merr = multierror.Append(merr, fmt.Errorf("account %d has no role", index))
			continue
		}
		_, dup := seen[role]
		if dup {
			merr = multierror.Append(merr, fmt.Errorf("duplicate role (%s)", role))
			continue
		}
		seen[role] = struct{}{}

		e, err := parseEntry(account)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("invalid account for role (%s): %w", role, err))
			continue
		}

		r.entries[role] = e
	}

	// Cosigners and slots can only be checked once all roles are known.
	for role, e := range r.entries {
		for _, cosigner := range e.cosigners {
			_, ok := r.entries[cosigner]
			if !ok {
				merr = multierror.Append(merr, fmt.Errorf("unknown cosigner (%s) for role (%s)", cosigner, role))
			}
		}
	}
	slots := map[string]custody.Role{
		"create_by":     r.createBy,
		"commission_by": r.commissionBy,
		"master":        r.master,
	}
	for _, name := range []string{"create_by", "commission_by", "master"} {
		role := slots[name]
		if role == "" {
			continue
		}
		_, ok := r.entries[role]
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("unknown role (%s) for slot (%s)", role, name))
		}
	}

	for index, trustline := range file.Trustlines {
		for _, descriptor := range []string{trustline.Test, trustline.Public} {
			if descriptor == "" {
				continue
			}
			_, err := asset.Resolve(descriptor)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("invalid trustline %d: %w", index, err))
			}
		}

		descriptor := trustline.descriptor(string(mode))
		if descriptor == "" {
			continue
		}
		a, err := asset.Resolve(descriptor)
		if err != nil {
			continue
		}
		r.trustlines = append(r.trustlines, a)
	}

	err = merr.ErrorOrNil()
	if err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return &r, nil
}

func parseEntry(account Account) (entry, error) {

	var e entry
	switch {

	case account.Secret != "":
		key, err := keypair.ParseFull(account.Secret)
		if err != nil {
			return entry{}, fmt.Errorf("could not parse secret: %w", err)
		}
		if account.Address != "" && account.Address != key.Address() {
			return entry{}, fmt.Errorf("secret does not match address (%s)", account.Address)
		}
		e.address = key.Address()
		e.key = key

	case account.Address != "":
		_, err := keypair.ParseAddress(account.Address)
		if err != nil {
			return entry{}, fmt.Errorf("could not parse address: %w", err)
		}
		e.address = account.Address

	default:
		return entry{}, fmt.Errorf("account needs an address or a secret")
	}

	for _, cosigner := range account.Cosigners {
		e.cosigners = append(e.cosigners, custody.Role(cosigner))
	}

	return e, nil
}

// Mode returns the network mode the registry was configured for.
func (r *Registry) Mode() custody.Mode {
	return r.mode
}

// Lookup returns the address of the account holding the given role.
func (r *Registry) Lookup(role custody.Role) (string, error) {
	e, ok := r.entries[role]
	if !ok {
		return "", failure.InvalidAccountRole{
			Role:        role.String(),
			Description: failure.NewDescription("role is not part of the registry"),
		}
	}
	return e.address, nil
}

// Signers returns the keys that sign on behalf of the given role: the role's
// own key, if it has a secret, followed by the keys of its cosigners that have
// one. A role without a secret signs through its cosigners only. It fails with
// failure.MissingPrivateKey when no key at all is available.
func (r *Registry) Signers(role custody.Role) ([]keypair.KP, error) {
	e, ok := r.entries[role]
	if !ok {
		return nil, failure.InvalidAccountRole{
			Role:        role.String(),
			Description: failure.NewDescription("role is not part of the registry"),
		}
	}

	var signers []keypair.KP
	if e.key != nil {
		signers = append(signers, e.key)
	}
	for _, cosigner := range e.cosigners {
		key := r.entries[cosigner].key
		if key == nil {
			continue
		}
		signers = append(signers, key)
	}

	if len(signers) == 0 {
		return nil, failure.MissingPrivateKey{
			Description: failure.NewDescription("role has no secret and no cosigner with a secret",
				failure.WithString("role", role.String()),
			),
			Address: e.address,
		}
	}

	return signers, nil
}

// CreateBy returns the role that funds new accounts and receives the funds of
// deleted ones. It is empty when not configured.
func (r *Registry) CreateBy() custody.Role {
	return r.createBy
}

// CommissionBy returns the role that pays fee-bump commissions.
func (r *Registry) CommissionBy() custody.Role {
	return r.commissionBy
}

// Master returns the role that sponsors trustline changes.
func (r *Registry) Master() custody.Role {
	return r.master
}

// Trustlines returns the baseline trustlines for the registry's mode.
func (r *Registry) Trustlines() []custody.Asset {
	trustlines := make([]custody.Asset, len(r.trustlines))
	copy(trustlines, r.trustlines)
	return trustlines
}
