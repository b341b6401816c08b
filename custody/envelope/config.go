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
	"time"
)

// DefaultTimeout is the default validity window of built envelopes.
const DefaultTimeout = 180 * time.Second

// Config is the configuration of an envelope builder.
type Config struct {
	Timeout time.Duration
}

// Option changes the configuration of an envelope builder.
type Option func(*Config)

// WithTimeout sets the validity window of built envelopes.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}
