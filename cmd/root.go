package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/parrot/config"
	"github.com/lambda-feedback/parrot/internal/shell"
	"github.com/lambda-feedback/parrot/util/conf"
	"github.com/lambda-feedback/parrot/util/logging"
)

var (
	appName  = "parrot"
	appUsage = `A minimal http service exposing a liveness probe and an
echo endpoint for structured (JSON, MessagePack) payloads.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a JSON file.",
				EnvVars: []string{"CONFIG_FILE"},
			},
			&cli.PathFlag{
				Name:    "env-file",
				Usage:   "load configuration from a dotenv file.",
				EnvVars: []string{"ENV_FILE"},
			},
			// body flags
			&cli.Int64Flag{
				Name:     "body-limit",
				Usage:    "the maximum size of structured request bodies in bytes. 0 disables the limit.",
				Category: "body",
				EnvVars:  []string{"BODY__LIMIT"},
			},
			&cli.BoolFlag{
				Name:     "body-strict",
				Usage:    "only accept objects and arrays as top level body values.",
				Category: "body",
				EnvVars:  []string{"BODY__STRICT"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := createLogger(ctx)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, files, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   config.CliMap,
				Defaults: config.DefaultConfig(),
				FileName: ctx.Path("config"),
				EnvFile:  ctx.Path("env-file"),
				Log:      log,
			})
			if err != nil {
				return err
			}

			log.Debug("parsed config",
				zap.Int64("body_limit", cfg.Body.Limit),
				zap.Bool("body_strict", cfg.Body.Strict),
			)

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	// exit with the code of an ExitError, otherwise 1
	return shell.ExitCode(err)
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var config zap.Config
	if format == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = map[string]any{
		"app": appName,
	}

	config.Level = level

	return config.Build()
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "production"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
