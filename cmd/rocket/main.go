package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	var shutdownTracing func(context.Context) error

	app := cli.App{
		Name:    "rocket",
		Usage:   "command line client for the RocketAPI social data service",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "RocketAPI access token",
				Required: true,
				EnvVars:  []string{"ROCKETAPI_TOKEN"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for each request (values below 15s may cause problems)",
				Value:   30 * time.Second,
				EnvVars: []string{"ROCKETAPI_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"ROCKETAPI_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "on failure, print the last raw response and request counter",
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			shutdown, err := configOTEL(cctx.Context, "rocket")
			if err != nil {
				return err
			}
			shutdownTracing = shutdown
			return nil
		},
		After: func(cctx *cli.Context) error {
			if shutdownTracing == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return shutdownTracing(ctx)
		},
	}
	app.Commands = []*cli.Command{
		cmdRaw,
		cmdInstagram,
		cmdThreads,
	}
	return app.Run(args)
}
