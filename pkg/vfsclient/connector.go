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

// Package vfsclient defines the transfer backend contract: a connector
// accepts a request tagged with an action, performs the byte transfer, and
// reports the outcome exactly once through a single-use callback.
package vfsclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎬 Action identifies the transfer to perform
type Action int

const (
	ActionUnknown Action = iota
	ActionCopy           // Copy source to destination
	ActionMove           // Copy source to destination, then remove source
	ActionDelete         // Remove source
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionMove:
		return "move"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// 📦 Request describes a single transfer. It is transient: created for one
// call, handed to the connector, and never reused.
type Request struct {
	Action      Action // What to do with the source
	SourceURI   string // File to operate on
	Destination string // Full destination file path (empty for delete)
}

// String returns a string representation of the request
func (r Request) String() string {
	if r.Destination == "" {
		return fmt.Sprintf("%s %s", r.Action, r.SourceURI)
	}
	return fmt.Sprintf("%s %s -> %s", r.Action, r.SourceURI, r.Destination)
}

// 🔌 Connector is the interface for transfer backends. Send hands the
// request to the backend and returns once the transfer is in flight; the
// result arrives only through the callback, which the backend signals
// exactly once.
type Connector interface {
	Send(ctx context.Context, req Request, cb *Callback) error
}

// 🏭 Factory creates a new connector
type Factory func(ctx context.Context) (Connector, error)

var (
	// 🗺️ connectors is a map of URI schemes to factories
	connectors = make(map[string]Factory)
)

// 📝 Register registers a connector factory for a URI scheme
func Register(scheme string, factory Factory) {
	connectors[scheme] = factory
}

// 🎯 Get returns a connector factory by URI scheme
func Get(scheme string) Factory {
	return connectors[scheme]
}

// 🔍 ForURI returns a connector for the given URI, using its scheme to pick
// the factory. Bare paths and file:// URIs resolve to the "file" connector.
func ForURI(ctx context.Context, uri string) (Connector, error) {
	scheme := "file"
	if u, err := url.Parse(uri); err == nil && u.Scheme != "" && !isDriveLetter(u.Scheme) {
		scheme = u.Scheme
	}
	factory := Get(scheme)
	if factory == nil {
		return nil, errors.Errorf("no connector registered for scheme %q", scheme)
	}
	return factory(ctx)
}

// isDriveLetter reports whether s looks like a Windows drive letter rather
// than a URI scheme (url.Parse treats "C:" as a scheme).
func isDriveLetter(s string) bool {
	return len(s) == 1 && strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
}
