package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/rocketapi-io/rocketapi-go/client"

	"github.com/urfave/cli/v2"
)

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func loadTransport(cctx *cli.Context) *client.APIClient {
	return client.NewAPIClient(cctx.String("token"), cctx.Duration("timeout"))
}

// Runs a single call against the dispatcher, and prints the payload as indented JSON.
//
// With --debug, failures also print the raw last response and the request counter to stderr.
func runCall(cctx *cli.Context, d *client.Dispatcher, call func(ctx context.Context) (json.RawMessage, error)) error {
	ctx := cctx.Context
	if ctx == nil {
		ctx = context.Background()
	}
	d.Logger = slog.Default()

	out, err := call(ctx)
	if err != nil {
		if cctx.Bool("debug") {
			fmt.Fprintf(os.Stderr, "requests: %d\n", d.Counter())
			if last := d.LastResponse(); last != nil {
				fmt.Fprintf(os.Stderr, "last response: %s\n", string(last))
			}
		}
		return err
	}
	return printJSON(os.Stdout, out)
}

func printJSON(w io.Writer, raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// Parses a required positional integer argument (eg, a user or media id).
func argInt64(cctx *cli.Context, idx int, name string) (int64, error) {
	s := cctx.Args().Get(idx)
	if s == "" {
		return 0, fmt.Errorf("need to provide %s as an argument", name)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return n, nil
}

func argString(cctx *cli.Context, idx int, name string) (string, error) {
	s := cctx.Args().Get(idx)
	if s == "" {
		return "", fmt.Errorf("need to provide %s as an argument", name)
	}
	return s, nil
}

// Parses "key=value" arguments in to a JSON payload object. Quoted values are kept as strings; otherwise integers and booleans are detected.
func parseParams(args []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, param := range args {
		split := strings.SplitN(param, "=", 2)
		if len(split) != 2 {
			return nil, fmt.Errorf("parameters must be split with an equals sign")
		}
		key, val := split[0], split[1]
		if strings.HasPrefix(val, "\"") || strings.HasPrefix(val, "'") {
			params[key] = strings.Trim(val, "\"'")
		} else if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			params[key] = n
		} else if b, err := strconv.ParseBool(val); err == nil {
			params[key] = b
		} else {
			params[key] = val
		}
	}
	return params, nil
}
