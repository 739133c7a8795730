package instagram

import (
	"context"
	"encoding/json"
)

type searchInput struct {
	Query string `json:"query"`
}

type idPagedInput struct {
	ID    int64  `json:"id"`
	Page  int64  `json:"page,omitempty"`
	MaxID string `json:"max_id,omitempty"`
}

type hashtagInput struct {
	Name string `json:"name"`
}

type hashtagMediaInput struct {
	Name  string `json:"name"`
	Page  int64  `json:"page,omitempty"`
	MaxID string `json:"max_id,omitempty"`
}

type commentRepliesInput struct {
	ID      int64  `json:"id"`
	MediaID int64  `json:"media_id"`
	MaxID   string `json:"max_id,omitempty"`
}

// Searches for users, hashtags and places.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "search", &searchInput{Query: query})
}

func (c *Client) GetGuideInfo(ctx context.Context, guideID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "guide/get_info", &idInput{ID: guideID})
}

func (c *Client) GetLocationInfo(ctx context.Context, locationID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "location/get_info", &idInput{ID: locationID})
}

// Retrieves media posted at a location.
//
// Pagination needs both page and maxID, taken from the "next_page" and "next_max_id" fields of the previous response.
func (c *Client) GetLocationMedia(ctx context.Context, locationID int64, page int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "location/get_media", &idPagedInput{ID: locationID, Page: page, MaxID: maxID})
}

// Retrieves hashtag information by name (without the leading '#').
func (c *Client) GetHashtagInfo(ctx context.Context, name string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "hashtag/get_info", &hashtagInput{Name: name})
}

// Retrieves media for a hashtag. Paginates like [Client.GetLocationMedia].
func (c *Client) GetHashtagMedia(ctx context.Context, name string, page int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "hashtag/get_media", &hashtagMediaInput{Name: name, Page: page, MaxID: maxID})
}

// Retrieves stories for several highlights at once.
func (c *Client) GetHighlightStoriesBulk(ctx context.Context, highlightIDs []int64) (json.RawMessage, error) {
	if highlightIDs == nil {
		highlightIDs = []int64{}
	}
	return c.Dispatch(ctx, "highlight/get_stories", &idsInput{IDs: highlightIDs})
}

func (c *Client) GetHighlightStories(ctx context.Context, highlightID int64) (json.RawMessage, error) {
	return c.GetHighlightStoriesBulk(ctx, []int64{highlightID})
}

// Retrieves comment likers. Paginate with "next_max_id".
func (c *Client) GetCommentLikes(ctx context.Context, commentID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "comment/get_likes", &idPageInput{ID: commentID, MaxID: maxID})
}

// Retrieves replies to a comment on the given media. Paginate with "next_max_child_cursor".
func (c *Client) GetCommentReplies(ctx context.Context, commentID, mediaID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "comment/get_replies", &commentRepliesInput{ID: commentID, MediaID: mediaID, MaxID: maxID})
}

// Retrieves media using an audio track. Paginate with "next_max_id".
func (c *Client) GetAudioMedia(ctx context.Context, audioID int64, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "audio/get_media", &idPageInput{ID: audioID, MaxID: maxID})
}
