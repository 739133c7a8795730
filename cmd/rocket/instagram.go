package main

import (
	"context"
	"encoding/json"

	"github.com/rocketapi-io/rocketapi-go/instagram"

	"github.com/urfave/cli/v2"
)

var pageFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "count",
		Usage: "number of results to return (0 for service default)",
	},
	&cli.StringFlag{
		Name:  "max-id",
		Usage: "pagination cursor from a previous response",
	},
}

var cmdInstagram = &cli.Command{
	Name:  "instagram",
	Usage: "sub-commands for Instagram data",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "search",
			Usage:     "search for users, hashtags and places",
			ArgsUsage: `<query>`,
			Action:    runInstagramSearch,
		},
		&cli.Command{
			Name:      "user-info",
			Usage:     "fetch user info by username",
			ArgsUsage: `<username>`,
			Action:    runInstagramUserInfo,
		},
		&cli.Command{
			Name:      "user-info-by-id",
			Usage:     "fetch user info by user id",
			ArgsUsage: `<user-id>`,
			Action:    runInstagramUserInfoByID,
		},
		&cli.Command{
			Name:      "user-media",
			Usage:     "list media posted by a user",
			ArgsUsage: `<user-id>`,
			Flags:     pageFlags,
			Action:    runInstagramUserMedia,
		},
		&cli.Command{
			Name:      "user-followers",
			Usage:     "list followers of a user",
			ArgsUsage: `<user-id>`,
			Flags:     pageFlags,
			Action:    runInstagramUserFollowers,
		},
		&cli.Command{
			Name:      "user-following",
			Usage:     "list accounts followed by a user",
			ArgsUsage: `<user-id>`,
			Flags:     pageFlags,
			Action:    runInstagramUserFollowing,
		},
		&cli.Command{
			Name:      "user-stories",
			Usage:     "fetch current stories of a user",
			ArgsUsage: `<user-id>`,
			Action:    runInstagramUserStories,
		},
		&cli.Command{
			Name:      "media-info",
			Usage:     "fetch media info by id",
			ArgsUsage: `<media-id>`,
			Action:    runInstagramMediaInfo,
		},
		&cli.Command{
			Name:      "media-info-by-shortcode",
			Usage:     "fetch media info by shortcode",
			ArgsUsage: `<shortcode>`,
			Action:    runInstagramMediaInfoByShortcode,
		},
		&cli.Command{
			Name:      "media-comments",
			Usage:     "list comments on a media item",
			ArgsUsage: `<media-id>`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "min-id",
					Usage: "pagination cursor from a previous response",
				},
				&cli.BoolFlag{
					Name:  "threading",
					Usage: "request threaded comments",
					Value: true,
				},
			},
			Action: runInstagramMediaComments,
		},
		&cli.Command{
			Name:      "hashtag-media",
			Usage:     "list media for a hashtag",
			ArgsUsage: `<name>`,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:  "page",
					Usage: "page number from a previous response",
				},
				&cli.StringFlag{
					Name:  "max-id",
					Usage: "pagination cursor from a previous response",
				},
			},
			Action: runInstagramHashtagMedia,
		},
	},
}

func instagramCall(cctx *cli.Context, call func(ctx context.Context, c *instagram.Client) (json.RawMessage, error)) error {
	c := instagram.NewClientWithTransport(loadTransport(cctx))
	return runCall(cctx, c.Dispatcher, func(ctx context.Context) (json.RawMessage, error) {
		return call(ctx, c)
	})
}

func runInstagramSearch(cctx *cli.Context) error {
	query, err := argString(cctx, 0, "query")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.Search(ctx, query)
	})
}

func runInstagramUserInfo(cctx *cli.Context) error {
	username, err := argString(cctx, 0, "username")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserInfo(ctx, username)
	})
}

func runInstagramUserInfoByID(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserInfoByID(ctx, userID)
	})
}

func runInstagramUserMedia(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserMedia(ctx, userID, cctx.Int("count"), cctx.String("max-id"))
	})
}

func runInstagramUserFollowers(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserFollowers(ctx, userID, cctx.Int("count"), cctx.String("max-id"))
	})
}

func runInstagramUserFollowing(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserFollowing(ctx, userID, cctx.Int("count"), cctx.String("max-id"))
	})
}

func runInstagramUserStories(cctx *cli.Context) error {
	userID, err := argInt64(cctx, 0, "user id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetUserStories(ctx, userID)
	})
}

func runInstagramMediaInfo(cctx *cli.Context) error {
	mediaID, err := argInt64(cctx, 0, "media id")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetMediaInfo(ctx, mediaID)
	})
}

func runInstagramMediaInfoByShortcode(cctx *cli.Context) error {
	shortcode, err := argString(cctx, 0, "shortcode")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetMediaInfoByShortcode(ctx, shortcode)
	})
}

func runInstagramMediaComments(cctx *cli.Context) error {
	mediaID, err := argInt64(cctx, 0, "media id")
	if err != nil {
		return err
	}
	threading := cctx.Bool("threading")
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetMediaComments(ctx, mediaID, &threading, cctx.String("min-id"))
	})
}

func runInstagramHashtagMedia(cctx *cli.Context) error {
	name, err := argString(cctx, 0, "hashtag name")
	if err != nil {
		return err
	}
	return instagramCall(cctx, func(ctx context.Context, c *instagram.Client) (json.RawMessage, error) {
		return c.GetHashtagMedia(ctx, name, cctx.Int64("page"), cctx.String("max-id"))
	})
}
