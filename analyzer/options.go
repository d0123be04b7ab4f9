// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/closelock/internal/config"
)

// Option configures specific behavior of a [New] closelock analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithDeferred is an [Option] to configure whether unclosed locks are reported.
func WithDeferred(deferred bool) Option { return deferredOption{deferred: deferred} }

type deferredOption struct{ deferred bool }

func (o deferredOption) apply(r *runOptions) {
	r.checks.Set(config.DeferredCheck, o.deferred)
}

func (o deferredOption) LogAttr() slog.Attr {
	return slog.Bool("deferred", o.deferred)
}

// WithEscape is an [Option] to configure whether returned Get results are reported.
func WithEscape(escape bool) Option { return escapeOption{escape: escape} }

type escapeOption struct{ escape bool }

func (o escapeOption) apply(r *runOptions) {
	r.checks.Set(config.EscapeCheck, o.escape)
}

func (o escapeOption) LogAttr() slog.Attr {
	return slog.Bool("escape", o.escape)
}

// WithDiscard is an [Option] to configure whether discarded Unlock results are reported.
func WithDiscard(discard bool) Option { return discardOption{discard: discard} }

type discardOption struct{ discard bool }

func (o discardOption) apply(r *runOptions) {
	r.checks.Set(config.DiscardCheck, o.discard)
}

func (o discardOption) LogAttr() slog.Attr {
	return slog.Bool("discard", o.discard)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
