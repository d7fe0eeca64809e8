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

// 🚚 NewMoveFunction creates the move function. The signature contract is
// the same as copy: exactly two string parameters.
func NewMoveFunction(opts Options) (*MoveFunction, error) {
	if opts.Connector == nil {
		return nil, &ConfigurationError{Function: "move", Reason: "connector is required"}
	}
	if err := validateSignature("move", opts.Params, 2); err != nil {
		return nil, err
	}
	return &MoveFunction{opts: opts}, nil
}

// 🚚 MoveFunction moves a file from a source URI into a destination
// directory: the backend writes the destination first and removes the
// source only after a successful write.
type MoveFunction struct {
	opts Options
}

// 🏃 Execute moves sourceURI into destinationDir and returns true once the
// backend confirms. Path derivation and failure modes match copy.
func (f *MoveFunction) Execute(ctx context.Context, sourceURI, destinationDir string) (bool, error) {
	tracker := status.NewTracker(ctx, "move", sourceURI)

	tracker.Transition(ctx, status.PhaseResolving)
	destination, err := resolveDestination(ctx, sourceURI, destinationDir)
	if err != nil {
		tracker.Finish(ctx, err)
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", sourceURI).
		Str("destination", destination).
		Msg("moving file")

	err = submitAndWait(ctx, f.opts, tracker, vfsclient.Request{
		Action:      vfsclient.ActionMove,
		SourceURI:   sourceURI,
		Destination: destination,
	})
	tracker.Finish(ctx, err)
	if err != nil {
		return false, err
	}
	return true, nil
}
