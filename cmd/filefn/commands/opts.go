package commands

import (
	"context"
	"time"

	"github.com/filefn/filefn/pkg/config"
	"github.com/filefn/filefn/pkg/log"
	"github.com/filefn/filefn/pkg/vfsclient"
)

// 🔧 Opts carries the shared dependencies for all commands
type Opts struct {
	Config      *config.Config
	Connector   vfsclient.Connector
	WaitTimeout time.Duration
	Logger      *log.Logger
	UserLogger  *UserLogger
}

// 🏭 OptsFactory builds Opts after flags are parsed
type OptsFactory func(ctx context.Context) (*Opts, error)
