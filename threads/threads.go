package threads

import (
	"context"
	"encoding/json"
)

type searchUsersInput struct {
	Query     string `json:"query"`
	RankToken string `json:"rank_token,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type idInput struct {
	ID int64 `json:"id"`
}

type idPageInput struct {
	ID    int64  `json:"id"`
	MaxID string `json:"max_id,omitempty"`
}

type idQueryInput struct {
	ID    int64  `json:"id"`
	Query string `json:"query"`
}

// Searches for Threads users by username.
//
// To fetch further pages, pass the "rank_token" and "page_token" fields of the previous response.
func (c *Client) SearchUsers(ctx context.Context, query, rankToken, pageToken string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "search_users", &searchUsersInput{Query: query, RankToken: rankToken, PageToken: pageToken})
}

func (c *Client) GetUserInfo(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_info", &idInput{ID: userID})
}

// Retrieves the user's threads. Paginate with "next_max_id".
func (c *Client) GetUserFeed(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_feed", &idPageInput{ID: userID, MaxID: maxID})
}

// Retrieves the user's replies. Paginate with "next_max_id".
func (c *Client) GetUserReplies(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_replies", &idPageInput{ID: userID, MaxID: maxID})
}

func (c *Client) GetUserFollowers(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_followers", &idPageInput{ID: userID, MaxID: maxID})
}

func (c *Client) SearchUserFollowers(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_followers", &idQueryInput{ID: userID, Query: query})
}

func (c *Client) GetUserFollowing(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_following", &idPageInput{ID: userID, MaxID: maxID})
}

func (c *Client) SearchUserFollowing(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_following", &idQueryInput{ID: userID, Query: query})
}

// Retrieves replies to a thread. Paginate with "next_max_id".
func (c *Client) GetThreadReplies(ctx context.Context, threadID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "thread/get_replies", &idPageInput{ID: threadID, MaxID: maxID})
}

func (c *Client) GetThreadLikes(ctx context.Context, threadID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "thread/get_likes", &idInput{ID: threadID})
}
