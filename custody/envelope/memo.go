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
	"github.com/optakt/stellar-custody/custody/failure"
)

// MaxMemoBytes is the maximum size of a text memo, in bytes rather than
// characters.
const MaxMemoBytes = 28

// CheckMemo returns a failure.InvalidMemo error if the text memo is too long
// to be part of an envelope.
func CheckMemo(memo string) error {
	if len(memo) > MaxMemoBytes {
		return failure.InvalidMemo{
			Description: failure.NewDescription("memo text is too long",
				failure.WithInt("bytes", len(memo)),
				failure.WithInt("max_bytes", MaxMemoBytes),
			),
			Memo: memo,
		}
	}
	return nil
}
