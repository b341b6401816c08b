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

package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/optakt/stellar-custody/custody/envelope"
)

// DefaultConfig is the default configuration for the lifecycle manager.
var DefaultConfig = Config{
	StartingBalance: decimal.NewFromInt(1),
	HomeDomain:      "",
	Timeout:         envelope.DefaultTimeout,
}

// Config contains the configuration options for the lifecycle manager.
type Config struct {
	StartingBalance decimal.Decimal
	HomeDomain      string
	Timeout         time.Duration
}

// Option is an option that can be given to the lifecycle manager to configure
// optional parameters on initialization.
type Option func(*Config)

// WithStartingBalance sets the native balance new accounts are created with.
func WithStartingBalance(balance decimal.Decimal) Option {
	return func(cfg *Config) {
		cfg.StartingBalance = balance
	}
}

// WithHomeDomain sets the home domain of new accounts. No home domain is set
// when it is empty.
func WithHomeDomain(domain string) Option {
	return func(cfg *Config) {
		cfg.HomeDomain = domain
	}
}

// WithTimeout sets the validity window of the envelopes the manager builds.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}
