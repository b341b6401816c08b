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
	"testing"

	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

const (
	GenericCreator  = custody.Role("creator")
	GenericTreasury = custody.Role("treasury")
	GenericMaster   = custody.Role("master")
)

// GenericRoles maps the generic roles to the index of their generic keypair.
var GenericRoles = map[custody.Role]int{
	GenericCreator:  5,
	GenericTreasury: 6,
	GenericMaster:   7,
}

type Registry struct {
	LookupFunc       func(role custody.Role) (string, error)
	SignersFunc      func(role custody.Role) ([]keypair.KP, error)
	CreateByFunc     func() custody.Role
	CommissionByFunc func() custody.Role
	MasterFunc       func() custody.Role
	TrustlinesFunc   func() []custody.Asset
}

func BaselineRegistry(t *testing.T) *Registry {
	t.Helper()

	r := Registry{
		LookupFunc: func(role custody.Role) (string, error) {
			index, ok := GenericRoles[role]
			if !ok {
				return "", failure.InvalidAccountRole{Role: role.String()}
			}
			return GenericAddress(index), nil
		},
		SignersFunc: func(role custody.Role) ([]keypair.KP, error) {
			index, ok := GenericRoles[role]
			if !ok {
				return nil, failure.InvalidAccountRole{Role: role.String()}
			}
			return []keypair.KP{GenericKeypair(index)}, nil
		},
		CreateByFunc: func() custody.Role {
			return GenericCreator
		},
		CommissionByFunc: func() custody.Role {
			return GenericTreasury
		},
		MasterFunc: func() custody.Role {
			return GenericMaster
		},
		TrustlinesFunc: func() []custody.Asset {
			return nil
		},
	}

	return &r
}

func (r *Registry) Lookup(role custody.Role) (string, error) {
	return r.LookupFunc(role)
}

func (r *Registry) Signers(role custody.Role) ([]keypair.KP, error) {
	return r.SignersFunc(role)
}

func (r *Registry) CreateBy() custody.Role {
	return r.CreateByFunc()
}

func (r *Registry) CommissionBy() custody.Role {
	return r.CommissionByFunc()
}

func (r *Registry) Master() custody.Role {
	return r.MasterFunc()
}

func (r *Registry) Trustlines() []custody.Asset {
	return r.TrustlinesFunc()
}
