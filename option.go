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

package streamexpr

import (
	"io"
	"time"

	"github.com/rulego/streamexpr/functions"
	"github.com/rulego/streamexpr/logger"
	"github.com/rulego/streamexpr/utils/timex"
)

// Option configures an Executor while it is built by New.
type Option func(*Executor)

// WithLogger sets the logger used by the executor and its compiler. Without it
// the process default from logger.GetDefault is used.
//
// Example:
//
//	ex, err := streamexpr.New(node, streamexpr.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(e *Executor) {
		e.log = log
	}
}

// WithLogLevel sets the level of the executor's logger. When no logger was
// given this changes the level of the process default logger.
func WithLogLevel(level logger.Level) Option {
	return func(e *Executor) {
		e.level = &level
	}
}

// WithLogOutput logs to output at level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Executor) {
		e.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog disables logging for this executor.
func WithDiscardLog() Option {
	return func(e *Executor) {
		e.log = logger.NewDiscardLogger()
	}
}

// WithFunctionRegistry resolves user-defined functions in r instead of
// functions.Default().
func WithFunctionRegistry(r *functions.FunctionRegistry) Option {
	return func(e *Executor) {
		e.registry = r
	}
}

// WithClock sets the time source of CURRENT_TIMESTAMP, LOCALTIME and the other
// clock functions. Tests use timex.FixedClock.
func WithClock(clock timex.Clock) Option {
	return func(e *Executor) {
		e.clock = clock
	}
}

// WithLocation sets the session time zone of LOCALTIME and LOCALTIMESTAMP.
// The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(e *Executor) {
		e.location = loc
	}
}
