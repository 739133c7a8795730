/*
General-purpose client for the RocketAPI HTTP proxy, which exposes social-platform data (Instagram and Threads profiles, media, comments, search) behind a single JSON endpoint.

[APIClient] is the transport: it wraps an [http.Client] and performs one authenticated POST of a JSON body to the fixed base endpoint plus a method path (eg "instagram/user/get_info"), returning the raw JSON document from the response. It does not interpret remote status codes; any HTTP response with a JSON body is a transport success. The [AuthMethod] interface adds credentials to requests; [TokenAuth] implements the "Authorization: Token ..." scheme used by the service.

[Dispatcher] sits on top of a [Transport] (normally an [APIClient]). Every call is classified from the provider's two-layer response [Envelope] in to either a payload or an [*APIError] of one of three kinds: transport failure, not-found, or bad response. Use [errors.Is] with [ErrTransport], [ErrNotFound] or [ErrBadResponse] to branch on the kind, and [errors.As] to get at the envelope. A Dispatcher also keeps diagnostic session state (the last raw response, and a count of calls which reached the service), available through [Dispatcher.LastResponse] and [Dispatcher.Counter].

The platform-specific packages (instagram, threads) are thin facades which build payloads and delegate to a Dispatcher scoped to their namespace.

## Design Notes

Nothing in this package retries, caches, paginates or rate-limits. Each call does exactly one HTTP request, and every outcome is returned to the caller verbatim. No outcome is fatal to the client, which stays usable after any failure.

Session state is the only shared mutable state, and it is guarded by a mutex, so a single Dispatcher (and the facades built on it) is safe to use from multiple goroutines. Session state is only updated when the transport returned a document; transport failures (including timeouts) leave both the counter and the last response untouched.

The default [http.Client] is instrumented with OpenTelemetry (otelhttp), and each dispatch records Prometheus metrics labelled by namespace and outcome.
*/
package client
