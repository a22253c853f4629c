// Package xrel provides a client for the xREL v2 release-tracking API.
//
// xREL is a catalog of scene and P2P releases. This package implements a
// typed, idiomatic Go client covering release lookups, latest-release feeds,
// ExtInfo (movie/game/...) metadata, favorite lists, comments and the OAuth2
// flows the API uses for authenticated endpoints.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API facade holding configuration and the shared request pipeline
//   - Token: an immutable OAuth2 bearer credential with expiry arithmetic
//   - RateLimitTracker: last-known rate-limit bookkeeping updated after every call
//   - ClientError: the single error shape every failed call resolves to
//
// # Usage
//
// Create a client and fetch the latest releases:
//
//	logger := zerolog.New(os.Stdout)
//	client := xrel.New(xrel.WithLogger(logger))
//
//	ctx := context.Background()
//	page, err := client.LatestReleases(ctx, xrel.LatestOptions{PerPage: 50})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, rls := range page.List {
//		fmt.Println(rls.Dirname)
//	}
//
// Authenticated endpoints need a token, obtained through one of the OAuth2
// grants:
//
//	client := xrel.New(xrel.WithOAuthApp(xrel.OAuthApp{
//		ClientID:     "your-client-id",
//		ClientSecret: "your-client-secret",
//		RedirectURI:  "https://example.com/callback",
//		Scopes:       []string{"viewnfo"},
//	}))
//
//	fmt.Println(client.AuthorizationURL()) // user visits, authorizes
//	token, err := client.ExchangeCode(ctx, codeFromRedirect)
//
// # Error Handling
//
// Every endpoint method returns either a typed value or an error. Upstream
// failures are reported as *ClientError, which carries the HTTP status code
// and, when the service supplied one, the structured API error payload:
//
//	var clientErr *xrel.ClientError
//	if errors.As(err, &clientErr) {
//		if clientErr.IsNotFound() {
//			// handle missing release
//		}
//	}
//
// Parameter problems (missing id, rating out of range, mutually exclusive
// options) are reported before any network call through the package's
// sentinel errors, e.g. ErrRatingOutOfRange.
//
// # Rate Limits
//
// The API communicates hourly rate limits through X-RateLimit-* response
// headers. The client records them after every call, success or failure:
//
//	rl := client.RateLimit().Snapshot()
//	fmt.Printf("%d/%d requests left\n", rl.Remaining, rl.Limit)
//
// The tracker is advisory bookkeeping only; the client never throttles or
// retries on its own.
package xrel
