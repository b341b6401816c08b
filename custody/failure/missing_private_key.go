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
)

// MissingPrivateKey is the error for a signer that only references a public
// address and holds no signing material.
type MissingPrivateKey struct {
	Description Description
	Address     string
	Index       int
}

// Error implements the error interface.
func (m MissingPrivateKey) Error() string {
	return fmt.Sprintf("missing private key (address: %s, signer index: %d): %s", m.Address, m.Index, m.Description)
}
