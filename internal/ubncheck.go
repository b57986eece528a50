package internal

import (
	"context"
	"io"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/ubncheck/internal/app/ubn"
	"github.com/ormanli/ubncheck/internal/infra/logging"
	"github.com/ormanli/ubncheck/internal/infra/transport/console"
)

// Run starts an interactive session over in and out with the passed configuration.
func Run(ctx context.Context, cfg ubn.Config, in io.Reader, out io.Writer) error {
	logging.Setup(cfg)

	session := console.NewSession(ubn.NewChecksumValidator(), in, out, clock.New())

	return session.Run(ctx)
}
