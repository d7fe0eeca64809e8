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

package operation

import "fmt"

// ⚙️ ConfigurationError reports an invalid function signature: wrong number
// of declared parameters or a non-string parameter type. It is raised once
// at construction, independent of any call values.
type ConfigurationError struct {
	Function string // Function name, e.g. "copy"
	Reason   string // What is wrong with the signature
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s(): %s", e.Function, e.Reason)
}

// 🔗 InvalidURIError reports a source or destination string that is not a
// well-formed path or URL. The offending value is always included.
type InvalidURIError struct {
	URI    string
	Reason string
	Err    error
}

func (e *InvalidURIError) Error() string {
	return fmt.Sprintf("provided uri %q is invalid: %s", e.URI, e.Reason)
}

func (e *InvalidURIError) Unwrap() error { return e.Err }

// 💥 BackendTransferError reports a failure surfaced by the transfer
// backend, wrapping the backend's original cause.
type BackendTransferError struct {
	SourceURI string
	Err       error
}

func (e *BackendTransferError) Error() string {
	return fmt.Sprintf("transfer backend failed for file %q: %v", e.SourceURI, e.Err)
}

func (e *BackendTransferError) Unwrap() error { return e.Err }

// 🛑 InterruptedError reports that the wait for the completion signal was
// cancelled before the backend answered.
type InterruptedError struct {
	SourceURI string
	Err       error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("interrupted while awaiting callback for file %q: %v", e.SourceURI, e.Err)
}

func (e *InterruptedError) Unwrap() error { return e.Err }

// ⏰ TimeoutError reports that the backend never signaled completion within
// the configured wait duration.
type TimeoutError struct {
	SourceURI string
	Waited    string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no callback from transfer backend for file %q within %s", e.SourceURI, e.Waited)
}

// Timeout marks the error as timeout-classified, in the net.Error style
func (e *TimeoutError) Timeout() bool { return true }
