/*
Package instagram is a RocketAPI client for Instagram data: users, media, comments, locations, hashtags, highlights, guides and audio.

Every method performs exactly one request and returns the raw JSON payload on success. Failures are [*client.APIError] values; use [errors.Is] with [client.ErrNotFound], [client.ErrBadResponse] or [client.ErrTransport] to tell them apart:

	c := instagram.NewClient(os.Getenv("ROCKETAPI_TOKEN"), 30*time.Second)
	info, err := c.GetUserInfo(ctx, "instagram")
	if errors.Is(err, client.ErrNotFound) {
		// no such user
	}

Optional arguments use their zero value for "absent": empty strings and zero pages are left out of the request entirely, and a zero count falls back to [DefaultCount]. Methods which page through results take the cursor ("max_id") from the previous response; this package does not paginate automatically.
*/
package instagram
