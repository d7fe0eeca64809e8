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

// 🗑️ NewDeleteFunction creates the delete function. The declared signature
// must be exactly one string parameter (the file uri).
func NewDeleteFunction(opts Options) (*DeleteFunction, error) {
	if opts.Connector == nil {
		return nil, &ConfigurationError{Function: "delete", Reason: "connector is required"}
	}
	if err := validateSignature("delete", opts.Params, 1); err != nil {
		return nil, err
	}
	return &DeleteFunction{opts: opts}, nil
}

// 🗑️ DeleteFunction removes the file named by a source URI through the
// transfer backend
type DeleteFunction struct {
	opts Options
}

// 🏃 Execute deletes sourceURI and returns true once the backend confirms.
// The URI must still be well-formed; there is no destination to derive.
func (f *DeleteFunction) Execute(ctx context.Context, sourceURI string) (bool, error) {
	tracker := status.NewTracker(ctx, "delete", sourceURI)

	tracker.Transition(ctx, status.PhaseResolving)
	if _, err := deriveProtocol(sourceURI); err != nil {
		tracker.Finish(ctx, err)
		return false, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", sourceURI).
		Msg("deleting file")

	err := submitAndWait(ctx, f.opts, tracker, vfsclient.Request{
		Action:    vfsclient.ActionDelete,
		SourceURI: sourceURI,
	})
	tracker.Finish(ctx, err)
	if err != nil {
		return false, err
	}
	return true, nil
}
