// Package tviso provides a client library for the Tviso media API.
//
// # Overview
//
// The client authenticates the calling application, optionally holds a
// user session, and forwards calls to the media endpoints. Responses are
// returned as decoded JSON without a fixed schema.
//
// # Quick Start
//
//	import "github.com/tetreum/tviso/pkg/tviso"
//
//	client, err := tviso.NewClient(tviso.Config{
//	    App:    "your-app-id",
//	    Secret: "your-app-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// Tviso uses two tokens:
//
//  1. An application auth token, fetched with the app id and secret.
//     The client fetches it on the first call and keeps it.
//  2. A user token, obtained by logging in with a username and password.
//     Only endpoints that act on behalf of a user need it.
//
// Example:
//
//	userToken, err := client.Auth().GetUserToken(ctx, "user", "pass", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reuse it later without logging in again
//	client, err = tviso.NewClient(tviso.Config{
//	    App:       "your-app-id",
//	    Secret:    "your-app-secret",
//	    UserToken: userToken,
//	})
//
// # Media
//
//	pending, err := client.Media().GetPendingMedias(ctx)
//	info, err := client.Media().GetMediaInfo(ctx, 42, 1, false)
//
// Read fields with gjson paths or decode into your own types:
//
//	name := info.Get("name").String()
//
//	var media struct {
//	    Name string `json:"name"`
//	}
//	err = info.Decode(&media)
//
// Any endpoint can be called directly with Query:
//
//	resp, err := client.Query(ctx, "media/full_info", map[string]string{
//	    "idm":       "42",
//	    "mediaType": "1",
//	}, false)
//
// # Error Handling
//
// When the API reports that the user token is invalid, every call returns
// ErrMissingUserToken. Log in again to recover:
//
//	pending, err := client.Media().GetPendingMedias(ctx)
//	if errors.Is(err, tviso.ErrMissingUserToken) {
//	    _, err = client.Auth().GetUserToken(ctx, "user", "pass", true)
//	}
//
// Other API error codes are not turned into Go errors by Query; check
// Response.Error. Nothing is retried.
//
// # Concurrency
//
// A Client is not safe for concurrent use. Create one per goroutine.
package tviso
