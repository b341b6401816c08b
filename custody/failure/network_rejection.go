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

package failure

import (
	"fmt"
	"strings"
)

// NetworkRejection is the failure for an envelope the ledger network refused.
// It is carried as data next to the submission instead of being returned as
// an error, so callers keep access to what was built before the submission.
type NetworkRejection struct {
	Description Description
	Status      int
	Title       string
	Transaction string
	Operations  []string
}

// Error implements the error interface.
func (n NetworkRejection) Error() string {
	if n.Transaction == "" {
		return fmt.Sprintf("network rejection (status: %d): %s", n.Status, n.Description)
	}
	return fmt.Sprintf("network rejection (status: %d, result: %s, operations: [%s]): %s",
		n.Status, n.Transaction, strings.Join(n.Operations, " "), n.Description)
}
