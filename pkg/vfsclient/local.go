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
	"io"
	"net/url"
	"os"
	"path"

	"github.com/blang/vfs"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register("file", func(ctx context.Context) (Connector, error) {
		return NewLocalConnector(vfs.OS()), nil
	})
}

// 💾 LocalConnector performs transfers against a local (or in-memory)
// filesystem. Each request runs in its own goroutine and signals its own
// callback; the connector holds no per-request state, so a single instance
// is safe for concurrent use.
type LocalConnector struct {
	fs vfs.Filesystem
}

// 🏭 NewLocalConnector creates a connector over the given filesystem
func NewLocalConnector(fs vfs.Filesystem) *LocalConnector {
	return &LocalConnector{fs: fs}
}

// 📨 Send validates the request and starts the transfer. The outcome is
// reported through cb, never through the return value; a non-nil error here
// means the request was rejected before any transfer began.
func (c *LocalConnector) Send(ctx context.Context, req Request, cb *Callback) error {
	if cb == nil {
		return errors.New("callback is required")
	}
	if req.SourceURI == "" {
		return errors.New("source uri is required")
	}
	if req.Action != ActionDelete && req.Destination == "" {
		return errors.Errorf("destination is required for %s", req.Action)
	}

	zerolog.Ctx(ctx).Debug().
		Str("action", req.Action.String()).
		Str("source", req.SourceURI).
		Str("destination", req.Destination).
		Msg("dispatching transfer")

	go c.run(ctx, req, cb)
	return nil
}

// 🏃 run executes the request and signals the callback exactly once
func (c *LocalConnector) run(ctx context.Context, req Request, cb *Callback) {
	var err error
	switch req.Action {
	case ActionCopy:
		err = c.copyFile(req.SourceURI, req.Destination)
	case ActionMove:
		err = c.moveFile(req.SourceURI, req.Destination)
	case ActionDelete:
		err = c.deleteFile(req.SourceURI)
	default:
		err = errors.Errorf("unsupported action %q", req.Action)
	}

	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Str("source", req.SourceURI).
			Msg("transfer failed")
	}
	cb.Signal(err)
}

// 📄 copyFile copies src to dst, preserving the source's permission bits.
// The destination's parent directories are created as needed.
func (c *LocalConnector) copyFile(src, dst string) error {
	srcPath := localPath(src)
	dstPath := localPath(dst)

	srcStat, err := c.fs.Stat(srcPath)
	if err != nil {
		return errors.Errorf("stating source file: %w", err)
	}
	if srcStat.IsDir() {
		return errors.Errorf("source %q is a directory, not a file", src)
	}

	srcFile, err := vfs.Open(c.fs, srcPath)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	if err := vfs.MkdirAll(c.fs, path.Dir(dstPath), 0755); err != nil {
		return errors.Errorf("creating destination directories: %w", err)
	}

	dstFile, err := c.fs.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcStat.Mode()&os.ModePerm)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Errorf("copying file content: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}

// 🚚 moveFile copies src to dst and removes src only after the copy
// succeeded. Implemented as copy+remove so the same semantics hold across
// filesystem boundaries.
func (c *LocalConnector) moveFile(src, dst string) error {
	if err := c.copyFile(src, dst); err != nil {
		return err
	}
	if err := c.fs.Remove(localPath(src)); err != nil {
		return errors.Errorf("removing source file: %w", err)
	}
	return nil
}

// 🗑️ deleteFile removes the file at src
func (c *LocalConnector) deleteFile(src string) error {
	if err := c.fs.Remove(localPath(src)); err != nil {
		return errors.Errorf("removing file: %w", err)
	}
	return nil
}

// localPath strips a file:// scheme from a URI, leaving bare paths alone
func localPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	if u.Path != "" {
		return u.Path
	}
	return u.Opaque
}
