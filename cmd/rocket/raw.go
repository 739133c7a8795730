package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rocketapi-io/rocketapi-go/client"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var cmdRaw = &cli.Command{
	Name:      "raw",
	Usage:     "call any method path with a JSON payload",
	ArgsUsage: "<method-path> [paramKey=paramValue...]",
	Description: "The payload is built from key=value arguments, or read as JSON from stdin when stdin is not a terminal.\n" +
		"Example: rocket raw instagram/user/get_info username=instagram",
	Action: runRaw,
}

func runRaw(cctx *cli.Context) error {
	method := cctx.Args().First()
	if method == "" {
		return fmt.Errorf("need to provide method path as argument")
	}

	var input []byte
	if !isatty.IsTerminal(os.Stdin.Fd()) && cctx.Args().Len() == 1 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}
		input = bytes.TrimSpace(b)
	}

	var payload any
	if len(input) > 0 {
		if !json.Valid(input) {
			return fmt.Errorf("stdin is not valid JSON")
		}
		payload = json.RawMessage(input)
	} else {
		params, err := parseParams(cctx.Args().Tail())
		if err != nil {
			return err
		}
		payload = params
	}

	d := client.NewDispatcher(loadTransport(cctx), "")
	return runCall(cctx, d, func(ctx context.Context) (json.RawMessage, error) {
		return d.Dispatch(ctx, method, payload)
	})
}
