/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package compiler

import (
	"time"

	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/logger"
	"github.com/rulego/streamexpr/utils/timex"
)

// Option configures a Compiler.
type Option func(*Compiler)

// WithRegistry resolves user-defined functions in r instead of the default registry.
func WithRegistry(r *functions.FunctionRegistry) Option {
	return func(c *Compiler) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithClock sets the clock read by LOCALTIME, CURRENT_TIMESTAMP and the like.
func WithClock(clock timex.Clock) Option {
	return func(c *Compiler) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the session zone used for LOCALTIME and LOCALTIMESTAMP.
func WithLocation(loc *time.Location) Option {
	return func(c *Compiler) {
		if loc != nil {
			c.location = loc
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}
