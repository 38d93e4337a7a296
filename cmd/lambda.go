package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/parrot/app"
	"github.com/lambda-feedback/parrot/app/lambda"
	"github.com/lambda-feedback/parrot/util/conf"
	"github.com/lambda-feedback/parrot/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the service as an AWS Lambda
runtime interface client. Proxy events from API Gateway or an
Application Load Balancer are translated into http requests and
served by the same handlers as the standalone server.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    lambda.ProxySourceApiGatewayV2.String(),
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Defaults: conf.Defaults{
			"lambda_proxy_source": ctx.String("lambda-proxy-source"),
		},
		Log: log,
		Cli: ctx,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
