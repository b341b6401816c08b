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

package payment

import (
	"time"

	"github.com/optakt/stellar-custody/custody/envelope"
)

// DefaultConfig is the default configuration for the payment orchestrator.
var DefaultConfig = Config{
	Timeout: envelope.DefaultTimeout,
}

// Config contains the configuration options for the payment orchestrator.
type Config struct {
	Timeout time.Duration
}

// Option is an option that can be given to the payment orchestrator.
type Option func(*Config)

// WithTimeout sets the validity window of the envelopes the orchestrator
// builds.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}
