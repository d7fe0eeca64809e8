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

package operation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filefn/filefn/pkg/operation"
	"github.com/filefn/filefn/pkg/vfsclient"
)

// 🧪 fakeConnector records requests and signals a scripted outcome
type fakeConnector struct {
	mu       sync.Mutex
	requests []vfsclient.Request

	signalErr error // signaled through the callback
	sendErr   error // returned from Send itself
	silent    bool  // never signal, to exercise the wait bound
}

func (f *fakeConnector) Send(ctx context.Context, req vfsclient.Request, cb *vfsclient.Callback) error {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.sendErr != nil {
		return f.sendErr
	}
	if f.silent {
		return nil
	}
	go cb.Signal(f.signalErr)
	return nil
}

func (f *fakeConnector) recorded() []vfsclient.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]vfsclient.Request(nil), f.requests...)
}

// stringParams declares n string-typed parameters
func stringParams(n int) []operation.Param {
	params := make([]operation.Param, n)
	for i := range params {
		params[i] = operation.Param{Name: "arg", Type: operation.TypeString}
	}
	return params
}

// 🧪 testContext creates a context with a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 TestSignatureValidation tests construction-time arity and type checks
func TestSignatureValidation(t *testing.T) {
	conn := &fakeConnector{}

	tests := []struct {
		name      string
		params    []operation.Param
		wantError string
	}{
		{
			name:   "valid_two_strings",
			params: stringParams(2),
		},
		{
			name:      "no_params",
			params:    nil,
			wantError: "required 2 arguments, but found 0",
		},
		{
			name:      "one_param",
			params:    stringParams(1),
			wantError: "required 2 arguments, but found 1",
		},
		{
			name:      "three_params",
			params:    stringParams(3),
			wantError: "required 2 arguments, but found 3",
		},
		{
			name: "first_param_not_string",
			params: []operation.Param{
				{Name: "file.path", Type: operation.TypeBool},
				{Name: "destination.dir", Type: operation.TypeString},
			},
			wantError: "required string, but found bool",
		},
		{
			name: "second_param_not_string",
			params: []operation.Param{
				{Name: "file.path", Type: operation.TypeString},
				{Name: "destination.dir", Type: operation.TypeInt},
			},
			wantError: "required string, but found int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := operation.NewCopyFunction(operation.Options{
				Connector: conn,
				Params:    tt.params,
			})
			if tt.wantError == "" {
				require.NoError(t, err)
				require.NotNil(t, fn)
				return
			}

			require.Error(t, err)
			assert.Nil(t, fn)

			var cfgErr *operation.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Error(), tt.wantError)
		})
	}
}

// 🧪 TestSignatureValidationDelete tests the one-argument delete signature
func TestSignatureValidationDelete(t *testing.T) {
	conn := &fakeConnector{}

	_, err := operation.NewDeleteFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(1),
	})
	require.NoError(t, err)

	_, err = operation.NewDeleteFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	var cfgErr *operation.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "required 1 arguments, but found 2")
}

// 🧪 TestDestinationPathConstruction tests the separator-join contract
func TestDestinationPathConstruction(t *testing.T) {
	tests := []struct {
		name            string
		sourceURI       string
		destinationDir  string
		wantDestination string
	}{
		{
			name:            "no_trailing_separator",
			sourceURI:       "/a/b/c.txt",
			destinationDir:  "/x/y",
			wantDestination: "/x/y/c.txt",
		},
		{
			name:            "trailing_separator_not_duplicated",
			sourceURI:       "/a/b/c.txt",
			destinationDir:  "/x/y/",
			wantDestination: "/x/y/c.txt",
		},
		{
			name:            "file_uri_source",
			sourceURI:       "file:///a/b/c.txt",
			destinationDir:  "/x/y",
			wantDestination: "/x/y/c.txt",
		},
		{
			name:            "single_segment_source",
			sourceURI:       "c.txt",
			destinationDir:  "/x/y",
			wantDestination: "/x/y/c.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			conn := &fakeConnector{}

			fn, err := operation.NewCopyFunction(operation.Options{
				Connector: conn,
				Params:    stringParams(2),
			})
			require.NoError(t, err)

			ok, err := fn.Execute(ctx, tt.sourceURI, tt.destinationDir)
			require.NoError(t, err)
			assert.True(t, ok)

			reqs := conn.recorded()
			require.Len(t, reqs, 1)
			assert.Equal(t, vfsclient.ActionCopy, reqs[0].Action)
			assert.Equal(t, tt.sourceURI, reqs[0].SourceURI)
			assert.Equal(t, tt.wantDestination, reqs[0].Destination)
		})
	}
}

// 🧪 TestUnderivableDestination tests that a malformed destination is never
// handed to the connector
func TestUnderivableDestination(t *testing.T) {
	tests := []struct {
		name           string
		sourceURI      string
		destinationDir string
	}{
		{
			name:           "empty_destination_dir",
			sourceURI:      "/a/b/c.txt",
			destinationDir: "",
		},
		{
			name:           "no_base_name_in_source",
			sourceURI:      "/",
			destinationDir: "/x/y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			conn := &fakeConnector{}

			fn, err := operation.NewCopyFunction(operation.Options{
				Connector: conn,
				Params:    stringParams(2),
			})
			require.NoError(t, err)

			ok, err := fn.Execute(ctx, tt.sourceURI, tt.destinationDir)
			require.Error(t, err)
			assert.False(t, ok)

			var uriErr *operation.InvalidURIError
			require.ErrorAs(t, err, &uriErr)
			assert.Equal(t, tt.sourceURI, uriErr.URI)

			assert.Empty(t, conn.recorded(), "no transfer may be attempted")
		})
	}
}

// 🧪 TestInvalidSourceURI tests that an unparseable URI fails before any
// transfer is attempted
func TestInvalidSourceURI(t *testing.T) {
	ctx := testContext(t)
	conn := &fakeConnector{}

	fn, err := operation.NewCopyFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	require.NoError(t, err)

	// Control characters make url.Parse fail
	badURI := "/a/b/\x7f.txt"
	ok, err := fn.Execute(ctx, badURI, "/x/y")
	require.Error(t, err)
	assert.False(t, ok)

	var uriErr *operation.InvalidURIError
	require.ErrorAs(t, err, &uriErr)
	assert.Equal(t, badURI, uriErr.URI)
	assert.Contains(t, err.Error(), badURI)

	assert.Empty(t, conn.recorded())
}

// 🧪 TestWaitTimeout tests that a mute backend cannot hang the call
func TestWaitTimeout(t *testing.T) {
	ctx := testContext(t)
	conn := &fakeConnector{silent: true}

	fn, err := operation.NewCopyFunction(operation.Options{
		Connector:   conn,
		Params:      stringParams(2),
		WaitTimeout: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	ok, err := fn.Execute(ctx, "/a/b/c.txt", "/x/y")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 5*time.Second)

	var toErr *operation.TimeoutError
	require.ErrorAs(t, err, &toErr)
	assert.Equal(t, "/a/b/c.txt", toErr.SourceURI)
	assert.True(t, toErr.Timeout())
}

// 🧪 TestWaitInterrupted tests that cancellation surfaces as a distinct
// failure naming the source
func TestWaitInterrupted(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))

	conn := &fakeConnector{silent: true}
	fn, err := operation.NewCopyFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	require.NoError(t, err)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	ok, err := fn.Execute(ctx, "/a/b/c.txt", "/x/y")
	require.Error(t, err)
	assert.False(t, ok)

	var intErr *operation.InterruptedError
	require.ErrorAs(t, err, &intErr)
	assert.Equal(t, "/a/b/c.txt", intErr.SourceURI)
}

// 🧪 TestBackendFailure tests that the backend's cause is wrapped and the
// source URI is named
func TestBackendFailure(t *testing.T) {
	ctx := testContext(t)
	cause := assert.AnError
	conn := &fakeConnector{signalErr: cause}

	fn, err := operation.NewCopyFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	require.NoError(t, err)

	ok, err := fn.Execute(ctx, "/a/b/c.txt", "/x/y")
	require.Error(t, err)
	assert.False(t, ok)

	var beErr *operation.BackendTransferError
	require.ErrorAs(t, err, &beErr)
	assert.Equal(t, "/a/b/c.txt", beErr.SourceURI)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/a/b/c.txt")
}

// 🧪 TestSendRejection tests that a rejected submission is a backend error
func TestSendRejection(t *testing.T) {
	ctx := testContext(t)
	conn := &fakeConnector{sendErr: assert.AnError}

	fn, err := operation.NewCopyFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	require.NoError(t, err)

	ok, err := fn.Execute(ctx, "/a/b/c.txt", "/x/y")
	require.Error(t, err)
	assert.False(t, ok)

	var beErr *operation.BackendTransferError
	require.ErrorAs(t, err, &beErr)
}

// 🧪 TestNoIdempotence tests that duplicate calls transfer twice
func TestNoIdempotence(t *testing.T) {
	ctx := testContext(t)
	conn := &fakeConnector{}

	fn, err := operation.NewCopyFunction(operation.Options{
		Connector: conn,
		Params:    stringParams(2),
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := fn.Execute(ctx, "/a/b/c.txt", "/x/y")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Len(t, conn.recorded(), 2, "each call performs its own transfer")
}
