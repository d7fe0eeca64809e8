// Copyright 2025 the filefn authors
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

// Package status tracks the phase of a single in-flight file function call.
// A Tracker is owned by exactly one call, lives for the duration of that
// call, and is discarded with it; nothing is persisted across calls.
package status

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// 📊 Phase represents where a call currently is
type Phase int

const (
	PhaseValidating     Phase = iota // Checking inputs
	PhaseResolving                   // Deriving the destination path
	PhaseTransferring                // Request handed to the backend
	PhaseAwaitingSignal              // Blocked on the completion callback
	PhaseCompleted                   // Backend confirmed success
	PhaseFailed                      // Validation or backend failure
	PhaseTimedOut                    // No signal within the wait bound
)

// String returns a string representation of Phase
func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseResolving:
		return "resolving"
	case PhaseTransferring:
		return "transferring"
	case PhaseAwaitingSignal:
		return "awaiting-signal"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	case PhaseTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the call
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed || p == PhaseTimedOut
}

// 🎯 Tracker records phase transitions for one call
type Tracker struct {
	operation string
	source    string
	started   time.Time

	mu    sync.Mutex
	phase Phase
	err   error
}

// 🏭 NewTracker starts tracking a call in the validating phase
func NewTracker(ctx context.Context, operation, source string) *Tracker {
	t := &Tracker{
		operation: operation,
		source:    source,
		started:   time.Now(),
		phase:     PhaseValidating,
	}
	zerolog.Ctx(ctx).Trace().
		Str("operation", operation).
		Str("source", source).
		Msg("call started")
	return t
}

// 🔄 Transition moves the call to the given phase. Transitions out of a
// terminal phase are ignored.
func (t *Tracker) Transition(ctx context.Context, phase Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase.Terminal() {
		return
	}
	t.phase = phase
	zerolog.Ctx(ctx).Trace().
		Str("operation", t.operation).
		Str("source", t.source).
		Str("phase", phase.String()).
		Msg("phase transition")
}

// 🏁 Finish moves the call to its terminal phase based on the outcome
func (t *Tracker) Finish(ctx context.Context, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase.Terminal() {
		return
	}
	t.err = err
	switch {
	case err == nil:
		t.phase = PhaseCompleted
	case IsTimeout(err):
		t.phase = PhaseTimedOut
	default:
		t.phase = PhaseFailed
	}

	evt := zerolog.Ctx(ctx).Debug().
		Str("operation", t.operation).
		Str("source", t.source).
		Str("phase", t.phase.String()).
		Dur("elapsed", time.Since(t.started))
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg("call finished")
}

// 🔍 Phase returns the current phase
func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Err returns the terminal error, if any
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Operation returns the tracked operation name
func (t *Tracker) Operation() string { return t.operation }

// Source returns the tracked source URI
func (t *Tracker) Source() string { return t.source }

// Elapsed returns time spent since the call started
func (t *Tracker) Elapsed() time.Duration { return time.Since(t.started) }
