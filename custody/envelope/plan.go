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

package envelope

import (
	"github.com/stellar/go/txnbuild"
)

// Plan is an ordered list of operations with an optional memo. Every method
// returns a new plan and leaves the receiver's list as is, so operations can
// be collected step by step. The operations themselves are pointers shared
// with the transaction built from the plan, and the ledger SDK fills in some
// of their defaults while building, so they must not be reused afterwards.
type Plan struct {
	ops  []txnbuild.Operation
	memo string
}

// With returns a plan with the given operations appended.
func (p Plan) With(ops ...txnbuild.Operation) Plan {
	next := make([]txnbuild.Operation, 0, len(p.ops)+len(ops))
	next = append(next, p.ops...)
	next = append(next, ops...)
	return Plan{
		ops:  next,
		memo: p.memo,
	}
}

// WithMemo returns a plan with the given text memo.
func (p Plan) WithMemo(memo string) Plan {
	return Plan{
		ops:  p.ops,
		memo: memo,
	}
}

// Operations returns a copy of the planned operations, in order.
func (p Plan) Operations() []txnbuild.Operation {
	ops := make([]txnbuild.Operation, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// Memo returns the planned text memo.
func (p Plan) Memo() string {
	return p.memo
}

// Len returns the number of planned operations.
func (p Plan) Len() int {
	return len(p.ops)
}
