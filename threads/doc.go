// Package threads is a RocketAPI client for Threads data: user search, profiles, feeds, replies, followers and thread likes.
//
// It shares its transport and error classification with the instagram package; see [client.Dispatcher].
package threads
