package main

import (
	"context"
	"encoding/json"

	"github.com/rocketapi-io/rocketapi-go/threads"

	"github.com/urfave/cli/v2"
)

var maxIDFlag = &cli.StringFlag{
	Name:  "max-id",
	Usage: "pagination cursor from a previous response",
}

var cmdThreads = &cli.Command{
	Name:  "threads",
	Usage: "sub-commands for Threads data",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "search-users",
			Usage:     "search for users by username",
			ArgsUsage: `<query>`,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "rank-token"},
				&cli.StringFlag{Name: "page-token"},
			},
			Action: runThreadsSearchUsers,
		},
		&cli.Command{
			Name:      "user-info",
			Usage:     "fetch user info by user id",
			ArgsUsage: `<user-id>`,
			Action:    runThreadsUserInfo,
		},
		&cli.Command{
			Name:      "user-feed",
			Usage:     "list threads posted by a user",
			ArgsUsage: `<user-id>`,
			Flags:     []cli.Flag{maxIDFlag},
			Action:    runThreadsUserFeed,
		},
		&cli.Command{
			Name:      "user-replies",
			Usage:     "list replies posted by a user",
			ArgsUsage: `<user-id>`,
			Flags:     []cli.Flag{maxIDFlag},
			Action:    runThreadsUserReplies,
		},
		&cli.Command{
			Name:      "thread-replies",
			Usage:     "list replies to a thread",
			ArgsUsage: `<thread-id>`,
			Flags:     []cli.Flag{maxIDFlag},
			Action:    runThreadsThreadReplies,
		},
		&cli.Command{
			Name:      "thread-likes",
			Usage:     "list likers of a thread",
			ArgsUsage: `<thread-id>`,
			Action:    runThreadsThreadLikes,
		},
	},
}

func threadsCall(cctx *cli.Context, call func(ctx context.Context, c *threads.Client) (json.RawMessage, error)) error {
	c := threads.NewClientWithTransport(loadTransport(cctx))
	return runCall(cctx, c.Dispatcher, func(ctx context.Context) (json.RawMessage, error) {
		return call(ctx, c)
	})
}

func runThreadsSearchUsers(cctx *cli.Context) error {
	query, err := argString(cctx, 0, "query")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.SearchUsers(ctx, query, cctx.String("rank-token"), cctx.String("page-token"))
	})
}

func runThreadsUserInfo(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.GetUserInfo(ctx, userID)
	})
}

func runThreadsUserFeed(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.GetUserFeed(ctx, userID, cctx.String("max-id"))
	})
}

func runThreadsUserReplies(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.GetUserReplies(ctx, userID, cctx.String("max-id"))
	})
}

func runThreadsThreadReplies(cctx *cli.Context) error {
	threadID, err := argInt64(cctx, 0, "thread id")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.GetThreadReplies(ctx, threadID, cctx.String("max-id"))
	})
}

func runThreadsThreadLikes(cctx *cli.Context) error {
	threadID, err := argInt64(cctx, 0, "thread id")
	if err != nil {
		return err
	}
	return threadsCall(cctx, func(ctx context.Context, c *threads.Client) (json.RawMessage, error) {
		return c.GetThreadLikes(ctx, threadID)
	})
}
