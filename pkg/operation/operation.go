// Package operation provides the stream file functions: copy, move and
// delete. Each function validates its declared signature once at
// construction, derives the destination path from the source URI, delegates
// the byte transfer to a vfsclient connector, and blocks on the connector's
// completion callback with a bounded timeout.
package operation

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/filefn/filefn/pkg/status"
	"github.com/filefn/filefn/pkg/vfsclient"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ⏰ DefaultWaitTimeout bounds the wait for the connector callback when the
// options leave it unset
const DefaultWaitTimeout = 15 * time.Second

// 🏷️ ParamType is the declared type of a function parameter
type ParamType int

const (
	TypeUnknown ParamType = iota
	TypeString
	TypeBool
	TypeInt
	TypeFloat
)

// String returns a string representation of ParamType
func (t ParamType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// 📋 Param declares one parameter of a function signature
type Param struct {
	Name string
	Type ParamType
}

// 🔧 Options contains configuration for a file function
type Options struct {
	// Connector is the transfer backend. Required.
	Connector vfsclient.Connector
	// Params is the declared argument signature, validated at construction.
	Params []Param
	// WaitTimeout bounds the wait for the connector callback. Zero means
	// DefaultWaitTimeout.
	WaitTimeout time.Duration
}

// waitTimeout returns the effective callback wait duration
func (o Options) waitTimeout() time.Duration {
	if o.WaitTimeout <= 0 {
		return DefaultWaitTimeout
	}
	return o.WaitTimeout
}

// ✅ validateSignature checks the declared signature once, at construction:
// exactly want parameters, all string-typed. Violations are configuration
// errors regardless of any call values.
func validateSignature(fn string, params []Param, want int) error {
	if len(params) != want {
		return &ConfigurationError{
			Function: fn,
			Reason:   errors.Errorf("required %d arguments, but found %d", want, len(params)).Error(),
		}
	}
	for i, p := range params {
		if p.Type != TypeString {
			return &ConfigurationError{
				Function: fn,
				Reason: errors.Errorf("invalid type for argument %d (%s), required string, but found %s",
					i+1, p.Name, p.Type).Error(),
			}
		}
	}
	return nil
}

// 🔍 deriveProtocol validates that the source URI parses as a URL and
// returns its leading segment (the part before the first separator, e.g.
// "file:" for file URIs, "" for bare absolute paths).
func deriveProtocol(uri string) (string, error) {
	if _, err := url.Parse(uri); err != nil {
		return "", &InvalidURIError{URI: uri, Reason: "not a well-formed url", Err: err}
	}
	return strings.SplitN(uri, "/", 2)[0], nil
}

// 📄 extractFileName re-parses the URI prefixed with its protocol segment
// and takes the final path component. An empty result means the name could
// not be derived; the caller decides how to fail.
func extractFileName(ctx context.Context, uri, protocol string) string {
	candidate := protocol + "/" + uri
	u, err := url.Parse(candidate)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Str("uri", uri).
			Err(err).
			Msg("failed to extract file name from uri")
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// 🛤️ constructPath joins the destination directory and file name with
// exactly one separator. Both parts must be present; an empty result
// signals an underivable destination.
func constructPath(destinationDir, fileName string) string {
	if destinationDir == "" || fileName == "" {
		return ""
	}
	if strings.HasSuffix(destinationDir, "/") {
		return destinationDir + fileName
	}
	return destinationDir + "/" + fileName
}

// 🎯 resolveDestination runs the full path derivation for one call:
// protocol validation, base-name extraction, and the join. It never hands a
// malformed or empty destination downstream; the absence of a derivable
// name fails here instead.
func resolveDestination(ctx context.Context, sourceURI, destinationDir string) (string, error) {
	protocol, err := deriveProtocol(sourceURI)
	if err != nil {
		return "", err
	}

	fileName := extractFileName(ctx, sourceURI, protocol)
	destination := constructPath(destinationDir, fileName)
	if destination == "" {
		return "", &InvalidURIError{
			URI:    sourceURI,
			Reason: "destination path cannot be derived",
		}
	}
	return destination, nil
}

// 📨 submitAndWait sends the request through the connector with a fresh
// callback and blocks for the outcome, mapping wait failures onto the
// operation error taxonomy. Exactly one transfer attempt is made.
func submitAndWait(ctx context.Context, opts Options, tracker *status.Tracker, req vfsclient.Request) error {
	tracker.Transition(ctx, status.PhaseTransferring)

	cb := vfsclient.NewCallback()
	if err := opts.Connector.Send(ctx, req, cb); err != nil {
		return &BackendTransferError{SourceURI: req.SourceURI, Err: err}
	}

	tracker.Transition(ctx, status.PhaseAwaitingSignal)

	timeout := opts.waitTimeout()
	err := cb.Wait(ctx, timeout)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, vfsclient.ErrWaitTimeout):
		return &TimeoutError{SourceURI: req.SourceURI, Waited: timeout.String()}
	case errors.Is(err, vfsclient.ErrInterrupted):
		return &InterruptedError{SourceURI: req.SourceURI, Err: err}
	default:
		return &BackendTransferError{SourceURI: req.SourceURI, Err: err}
	}
}
