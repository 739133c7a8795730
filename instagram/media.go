package instagram

import (
	"context"
	"encoding/json"
)

type shortcodeInput struct {
	Shortcode string `json:"shortcode"`
}

type shortcodeCountPageInput struct {
	Shortcode string `json:"shortcode"`
	Count     int    `json:"count"`
	MaxID     string `json:"max_id,omitempty"`
}

type mediaCommentsInput struct {
	MediaID             int64  `json:"media_id"`
	CanSupportThreading bool   `json:"can_support_threading"`
	MinID               string `json:"min_id,omitempty"`
}

func (c *Client) GetMediaInfo(ctx context.Context, mediaID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "media/get_info", &idInput{ID: mediaID})
}

// Retrieves media information by shortcode (the part of the post URL after "/p/").
func (c *Client) GetMediaInfoByShortcode(ctx context.Context, shortcode string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "media/get_info_by_shortcode", &shortcodeInput{Shortcode: shortcode})
}

// Retrieves media likers by shortcode. Count is at most 50; zero or less sends [DefaultCount]. Paginate with "next_max_id".
func (c *Client) GetMediaLikes(ctx context.Context, shortcode string, count int, maxID string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "media/get_likes", &shortcodeCountPageInput{Shortcode: shortcode, Count: countOrDefault(count), MaxID: maxID})
}

// Retrieves media comments by media id.
//
// canSupportThreading defaults to true when nil. To paginate, pass the "next_min_id" field of the previous response as minID.
func (c *Client) GetMediaComments(ctx context.Context, mediaID int64, canSupportThreading *bool, minID string) (json.RawMessage, error) {
	threading := true
	if canSupportThreading != nil {
		threading = *canSupportThreading
	}
	return c.Dispatch(ctx, "media/get_comments", &mediaCommentsInput{MediaID: mediaID, CanSupportThreading: threading, MinID: minID})
}

func (c *Client) GetMediaShortcodeByID(ctx context.Context, mediaID int64) (json.RawMessage, error) {
	return c.Dispatch(ctx, "media/get_shortcode_by_id", &idInput{ID: mediaID})
}

func (c *Client) GetMediaIDByShortcode(ctx context.Context, shortcode string) (json.RawMessage, error) {
	return c.Dispatch(ctx, "media/get_id_by_shortcode", &shortcodeInput{Shortcode: shortcode})
}
