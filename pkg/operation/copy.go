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

import (
	"context"

	"github.com/filefn/filefn/pkg/status"
	"github.com/filefn/filefn/pkg/vfsclient"
	"github.com/rs/zerolog"
)

// 📦 NewCopyFunction creates the copy function. The declared signature must
// be exactly two string parameters (source uri, destination dir); anything
// else is a configuration error, raised here and never at call time.
func NewCopyFunction(opts Options) (*CopyFunction, error) {
	if opts.Connector == nil {
		return nil, &ConfigurationError{Function: "copy", Reason: "connector is required"}
	}
	if err := validateSignature("copy", opts.Params, 2); err != nil {
		return nil, err
	}
	return &CopyFunction{opts: opts}, nil
}

// 📦 CopyFunction copies a file from a source URI into a destination
// directory through the transfer backend. Calls are independent and hold no
// state; the function value is safe for concurrent use.
type CopyFunction struct {
	opts Options
}

// 🏃 Execute copies sourceURI into destinationDir and returns true once the
// backend confirms the transfer. The destination file name is the base name
// of the source. Exactly one transfer attempt is made; duplicate calls
// transfer again and the last write wins at the destination.
func (f *CopyFunction) Execute(ctx context.Context, sourceURI, destinationDir string) (bool, error) {
	tracker := status.NewTracker(ctx, "copy", sourceURI)

	tracker.Transition(ctx, status.PhaseResolving)
	destination, err := resolveDestination(ctx, sourceURI, destinationDir)
	if err != nil {
		tracker.Finish(ctx, err)
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", sourceURI).
		Str("destination", destination).
		Msg("copying file")

	err = submitAndWait(ctx, f.opts, tracker, vfsclient.Request{
		Action:      vfsclient.ActionCopy,
		SourceURI:   sourceURI,
		Destination: destination,
	})
	tracker.Finish(ctx, err)
	if err != nil {
		return false, err
	}
	return true, nil
}
