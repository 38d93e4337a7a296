package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/parrot/app"
	"github.com/lambda-feedback/parrot/app/standalone"
	"github.com/lambda-feedback/parrot/internal/server"
	"github.com/lambda-feedback/parrot/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server exposing the
	GET /health and POST /echo endpoints.

	The command will launch the http server and blocks indefin-
	itely, processing incoming http requests.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on. Empty listens on all interfaces.",
				Value:    "",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    server.DefaultPort,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT", "PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-header-timeout",
				Usage:    "The maximum duration for reading request headers.",
				Value:    10 * time.Second,
				Category: "http",
				EnvVars:  []string{"HTTP_READ_HEADER_TIMEOUT"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg := standalone.Config{
		HttpConfig: server.HttpConfig{
			Host:              ctx.String("host"),
			Port:              ctx.Int("port"),
			H2c:               ctx.Bool("h2c"),
			ReadHeaderTimeout: ctx.Duration("read-header-timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("starting http server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
