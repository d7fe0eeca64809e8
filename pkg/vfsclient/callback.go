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

package vfsclient

import (
	"context"
	"sync"
	"time"

	"gitlab.com/tozd/go/errors"
)

var (
	// ⏰ ErrWaitTimeout is returned by Wait when the backend never signals
	// within the configured duration
	ErrWaitTimeout = errors.New("timed out waiting for connector callback")

	// 🛑 ErrInterrupted is returned by Wait when the context is cancelled
	// before a signal arrives
	ErrInterrupted = errors.New("interrupted waiting for connector callback")
)

// 📡 Callback is the single-use completion signal for one in-flight request.
// The backend signals it exactly once (success or failure); the waiting
// caller observes it exactly once. A Callback must not be reused across
// requests.
type Callback struct {
	done chan error
	once sync.Once
}

// 🏭 NewCallback creates a fresh completion signal
func NewCallback() *Callback {
	return &Callback{
		// Buffered so the backend never blocks on a caller that already
		// timed out or was cancelled.
		done: make(chan error, 1),
	}
}

// 📣 Signal reports the outcome of the request. A nil error means success.
// Only the first call has any effect; extra signals are dropped.
func (c *Callback) Signal(err error) {
	c.once.Do(func() {
		c.done <- err
	})
}

// ⏳ Wait blocks until the backend signals, the timeout elapses, or the
// context is cancelled. It returns nil on success, the backend's error on
// failure, ErrWaitTimeout on expiry, and ErrInterrupted (wrapping the
// context error) on cancellation.
func (c *Callback) Wait(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-c.done:
		return err
	case <-timer.C:
		return ErrWaitTimeout
	case <-ctx.Done():
		return errors.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
}
