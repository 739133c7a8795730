package instagram

import (
	"context"
	"encoding/json"
)

type userInfoInput struct {
	Username string `json:"username"`
}

type idInput struct {
	ID int64 `json:"id"`
}

type idsInput struct {
	IDs []int64 `json:"ids"`
}

type idPageInput struct {
	ID    int64  `json:"id"`
	MaxID string `json:"max_id,omitempty"`
}

type idCountPageInput struct {
	ID    int64  `json:"id"`
	Count int    `json:"count"`
	MaxID string `json:"max_id,omitempty"`
}

type idQueryInput struct {
	ID    int64  `json:"id"`
	Query string `json:"query"`
}

// Retrieves user information by username.
func (c *Client) GetUserInfo(ctx context.Context, username string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_info", &userInfoInput{Username: username})
}

// Retrieves user information by user id.
func (c *Client) GetUserInfoByID(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_info_by_id", &idInput{ID: userID})
}

// Retrieves user media by user id. Count is at most 50; zero or less sends [DefaultCount].
//
// To paginate, pass the "next_max_id" field of the previous response as maxID.
func (c *Client) GetUserMedia(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_media", &idCountPageInput{ID: userID, Count: countOrDefault(count), MaxID: maxID})
}

// Retrieves user clips (videos from the "Reels" section) by user id. Count is at most 50; zero or less sends [DefaultCount].
//
// To paginate, pass the "max_id" field of the previous response (not "next_max_id") as maxID.
func (c *Client) GetUserClips(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_clips", &idCountPageInput{ID: userID, Count: countOrDefault(count), MaxID: maxID})
}

// Retrieves user guides by user id. Paginate with "next_max_id".
func (c *Client) GetUserGuides(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_guides", &idPageInput{ID: userID, MaxID: maxID})
}

// Retrieves media the user is tagged in. Count is at most 50; zero or less sends [DefaultCount].
//
// To paginate, pass the "end_cursor" field of the previous response as maxID.
func (c *Client) GetUserTags(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_tags", &idCountPageInput{ID: userID, Count: countOrDefault(count), MaxID: maxID})
}

// Retrieves accounts followed by the user. Count is at most 200; zero or less sends [DefaultCount]. Paginate with "next_max_id".
func (c *Client) GetUserFollowing(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_following", &idCountPageInput{ID: userID, Count: countOrDefault(count), MaxID: maxID})
}

// Searches the accounts followed by the user.
func (c *Client) SearchUserFollowing(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_following", &idQueryInput{ID: userID, Query: query})
}

// Retrieves followers of the user. Count is at most 100; zero or less sends [DefaultCount]. Paginate with "next_max_id".
func (c *Client) GetUserFollowers(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_followers", &idCountPageInput{ID: userID, Count: countOrDefault(count), MaxID: maxID})
}

// Searches the followers of the user.
func (c *Client) SearchUserFollowers(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_followers", &idQueryInput{ID: userID, Query: query})
}

// Retrieves stories for up to 4 users per request.
func (c *Client) GetUserStoriesBulk(ctx context.Context, userIDs []int64) (json.RawMessage, error) {
	if userIDs == nil {
		userIDs = []int64{}
	}
	return c.Dispatch(ctx, "user/get_stories", &idsInput{IDs: userIDs})
}

// Retrieves stories for a single user.
func (c *Client) GetUserStories(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.GetUserStoriesBulk(ctx, []int64{userID})
}

func (c *Client) GetUserHighlights(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_highlights", &idInput{ID: userID})
}

func (c *Client) GetUserLive(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_live", &idInput{ID: userID})
}

func (c *Client) GetUserSimilarAccounts(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_similar_accounts", &idInput{ID: userID})
}

// Retrieves the "About this account" section of a user.
func (c *Client) GetUserAbout(ctx context.Context, userID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "user/get_about", &idInput{ID: userID})
}
