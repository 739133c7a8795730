package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rocketapi-io/rocketapi-go/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// records the method path and JSON-encoded payload of each call
type recordingTransport struct {
	raw     json.RawMessage
	err     error
	method  string
	payload string
}

func (r *recordingTransport) Send(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	r.method = method
	r.payload = string(b)
	if r.err != nil {
		return nil, r.err
	}
	return r.raw, nil
}

const okEnvelope = `{"status":"done","response":{"status_code":200,"content_type":"application/json","body":{"status":"ok"}}}`

func TestClientPayloads(t *testing.T) {
	ctx := context.Background()
	noThreading := false

	testCases := []struct {
		name    string
		call    func(c *Client) (json.RawMessage, error)
		method  string
		payload string
	}{
		{"Search", func(c *Client) (json.RawMessage, error) { return c.Search(ctx, "kanye") },
			"instagram/search", `{"query":"kanye"}`},
		{"GetUserInfo", func(c *Client) (json.RawMessage, error) { return c.GetUserInfo(ctx, "kanyewest") },
			"instagram/user/get_info", `{"username":"kanyewest"}`},
		{"GetUserInfoByID", func(c *Client) (json.RawMessage, error) { return c.GetUserInfoByID(ctx, 18428658) },
			"instagram/user/get_info_by_id", `{"id":18428658}`},
		{"GetUserMedia default count", func(c *Client) (json.RawMessage, error) { return c.GetUserMedia(ctx, 18428658, 0, "") },
			"instagram/user/get_media", `{"id":18428658,"count":12}`},
		{"GetUserMedia paged", func(c *Client) (json.RawMessage, error) { return c.GetUserMedia(ctx, 18428658, 50, "QVFC") },
			"instagram/user/get_media", `{"id":18428658,"count":50,"max_id":"QVFC"}`},
		{"GetUserClips", func(c *Client) (json.RawMessage, error) { return c.GetUserClips(ctx, 18428658, 0, "") },
			"instagram/user/get_clips", `{"id":18428658,"count":12}`},
		{"GetUserGuides", func(c *Client) (json.RawMessage, error) { return c.GetUserGuides(ctx, 18428658, "") },
			"instagram/user/get_guides", `{"id":18428658}`},
		{"GetUserTags", func(c *Client) (json.RawMessage, error) { return c.GetUserTags(ctx, 18428658, 5, "cursor") },
			"instagram/user/get_tags", `{"id":18428658,"count":5,"max_id":"cursor"}`},
		{"GetUserFollowing", func(c *Client) (json.RawMessage, error) { return c.GetUserFollowing(ctx, 18428658, 200, "") },
			"instagram/user/get_following", `{"id":18428658,"count":200}`},
		{"SearchUserFollowing", func(c *Client) (json.RawMessage, error) { return c.SearchUserFollowing(ctx, 18428658, "kim") },
			"instagram/user/get_following", `{"id":18428658,"query":"kim"}`},
		{"GetUserFollowers", func(c *Client) (json.RawMessage, error) { return c.GetUserFollowers(ctx, 18428658, -1, "100") },
			"instagram/user/get_followers", `{"id":18428658,"count":12,"max_id":"100"}`},
		{"SearchUserFollowers", func(c *Client) (json.RawMessage, error) { return c.SearchUserFollowers(ctx, 18428658, "kim") },
			"instagram/user/get_followers", `{"id":18428658,"query":"kim"}`},
		{"GetUserStoriesBulk", func(c *Client) (json.RawMessage, error) { return c.GetUserStoriesBulk(ctx, []int64{1, 2, 3}) },
			"instagram/user/get_stories", `{"ids":[1,2,3]}`},
		{"GetUserStoriesBulk empty", func(c *Client) (json.RawMessage, error) { return c.GetUserStoriesBulk(ctx, nil) },
			"instagram/user/get_stories", `{"ids":[]}`},
		{"GetUserStories", func(c *Client) (json.RawMessage, error) { return c.GetUserStories(ctx, 18428658) },
			"instagram/user/get_stories", `{"ids":[18428658]}`},
		{"GetUserHighlights", func(c *Client) (json.RawMessage, error) { return c.GetUserHighlights(ctx, 18428658) },
			"instagram/user/get_highlights", `{"id":18428658}`},
		{"GetUserLive", func(c *Client) (json.RawMessage, error) { return c.GetUserLive(ctx, 18428658) },
			"instagram/user/get_live", `{"id":18428658}`},
		{"GetUserSimilarAccounts", func(c *Client) (json.RawMessage, error) { return c.GetUserSimilarAccounts(ctx, 18428658) },
			"instagram/user/get_similar_accounts", `{"id":18428658}`},
		{"GetUserAbout", func(c *Client) (json.RawMessage, error) { return c.GetUserAbout(ctx, 18428658) },
			"instagram/user/get_about", `{"id":18428658}`},
		{"GetMediaInfo", func(c *Client) (json.RawMessage, error) { return c.GetMediaInfo(ctx, 3089561820519690447) },
			"instagram/media/get_info", `{"id":3089561820519690447}`},
		{"GetMediaInfoByShortcode", func(c *Client) (json.RawMessage, error) { return c.GetMediaInfoByShortcode(ctx, "CqIbCzYMi5C") },
			"instagram/media/get_info_by_shortcode", `{"shortcode":"CqIbCzYMi5C"}`},
		{"GetMediaLikes", func(c *Client) (json.RawMessage, error) { return c.GetMediaLikes(ctx, "CqIbCzYMi5C", 0, "") },
			"instagram/media/get_likes", `{"shortcode":"CqIbCzYMi5C","count":12}`},
		{"GetMediaComments defaults", func(c *Client) (json.RawMessage, error) { return c.GetMediaComments(ctx, 3089561820519690447, nil, "") },
			"instagram/media/get_comments", `{"media_id":3089561820519690447,"can_support_threading":true}`},
		{"GetMediaComments explicit", func(c *Client) (json.RawMessage, error) {
			return c.GetMediaComments(ctx, 3089561820519690447, &noThreading, "min")
		},
			"instagram/media/get_comments", `{"media_id":3089561820519690447,"can_support_threading":false,"min_id":"min"}`},
		{"GetMediaShortcodeByID", func(c *Client) (json.RawMessage, error) { return c.GetMediaShortcodeByID(ctx, 3089561820519690447) },
			"instagram/media/get_shortcode_by_id", `{"id":3089561820519690447}`},
		{"GetMediaIDByShortcode", func(c *Client) (json.RawMessage, error) { return c.GetMediaIDByShortcode(ctx, "CqIbCzYMi5C") },
			"instagram/media/get_id_by_shortcode", `{"shortcode":"CqIbCzYMi5C"}`},
		{"GetGuideInfo", func(c *Client) (json.RawMessage, error) { return c.GetGuideInfo(ctx, 17898619759829276) },
			"instagram/guide/get_info", `{"id":17898619759829276}`},
		{"GetLocationInfo", func(c *Client) (json.RawMessage, error) { return c.GetLocationInfo(ctx, 212988663) },
			"instagram/location/get_info", `{"id":212988663}`},
		{"GetLocationMedia", func(c *Client) (json.RawMessage, error) { return c.GetLocationMedia(ctx, 212988663, 0, "") },
			"instagram/location/get_media", `{"id":212988663}`},
		{"GetLocationMedia paged", func(c *Client) (json.RawMessage, error) { return c.GetLocationMedia(ctx, 212988663, 2, "abc") },
			"instagram/location/get_media", `{"id":212988663,"page":2,"max_id":"abc"}`},
		{"GetHashtagInfo", func(c *Client) (json.RawMessage, error) { return c.GetHashtagInfo(ctx, "nyc") },
			"instagram/hashtag/get_info", `{"name":"nyc"}`},
		{"GetHashtagMedia", func(c *Client) (json.RawMessage, error) { return c.GetHashtagMedia(ctx, "nyc", 3, "") },
			"instagram/hashtag/get_media", `{"name":"nyc","page":3}`},
		{"GetHighlightStoriesBulk", func(c *Client) (json.RawMessage, error) { return c.GetHighlightStoriesBulk(ctx, []int64{17, 18}) },
			"instagram/highlight/get_stories", `{"ids":[17,18]}`},
		{"GetHighlightStories", func(c *Client) (json.RawMessage, error) { return c.GetHighlightStories(ctx, 17) },
			"instagram/highlight/get_stories", `{"ids":[17]}`},
		{"GetCommentLikes", func(c *Client) (json.RawMessage, error) { return c.GetCommentLikes(ctx, 17910, "") },
			"instagram/comment/get_likes", `{"id":17910}`},
		{"GetCommentReplies", func(c *Client) (json.RawMessage, error) { return c.GetCommentReplies(ctx, 17910, 3089561820519690447, "next") },
			"instagram/comment/get_replies", `{"id":17910,"media_id":3089561820519690447,"max_id":"next"}`},
		{"GetAudioMedia", func(c *Client) (json.RawMessage, error) { return c.GetAudioMedia(ctx, 514380713745185, "") },
			"instagram/audio/get_media", `{"id":514380713745185}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt := &recordingTransport{raw: json.RawMessage(okEnvelope)}
			c := NewClientWithTransport(rt)

			out, err := tc.call(c)
			require.NoError(t, err)
			assert.JSONEq(t, `{"status":"ok"}`, string(out))
			assert.Equal(t, tc.method, rt.method)
			assert.JSONEq(t, tc.payload, rt.payload)
			assert.Equal(t, uint64(1), c.Counter())
		})
	}
}

func TestClientErrors(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	rt := &recordingTransport{raw: json.RawMessage(`{"status":"done","response":{"status_code":404,"content_type":"application/json","body":{"message":"User not found"}}}`)}
	c := NewClientWithTransport(rt)

	_, err := c.GetUserInfo(ctx, "no-such-user-exists")
	assert.ErrorIs(err, client.ErrNotFound)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.JSONEq(`{"message":"User not found"}`, string(apiErr.Envelope.Response.Body))
	assert.Equal(uint64(1), c.Counter())
	assert.JSONEq(string(rt.raw), string(c.LastResponse()))

	rt.err = errors.New("connection refused")
	_, err = c.GetUserInfo(ctx, "instagram")
	assert.ErrorIs(err, client.ErrTransport)
	assert.Equal(uint64(1), c.Counter())

	// the client stays usable after failures
	rt.err = nil
	rt.raw = json.RawMessage(okEnvelope)
	_, err = c.GetUserInfo(ctx, "instagram")
	assert.NoError(err)
	assert.Equal(uint64(2), c.Counter())
}

func TestClientRawDispatch(t *testing.T) {
	rt := &recordingTransport{raw: json.RawMessage(okEnvelope)}
	c := NewClientWithTransport(rt)

	_, err := c.Dispatch(context.Background(), "user/get_brand_partners", map[string]any{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, "instagram/user/get_brand_partners", rt.method)
}
