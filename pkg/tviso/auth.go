package tviso

import (
	"context"
)

// Auth endpoints.
const (
	endpointAuthToken = "auth_token"
	endpointUserToken = "user/user_token"
)

// AuthService provides authentication operations for the Tviso API.
type AuthService struct {
	client *Client
}

// GetAuthToken requests an application auth token from Tviso.
//
// The token is cached on the client and attached to every Query. Query
// calls this on demand, so most callers never need to call it directly.
// A rejected request returns an *AuthTokenError carrying the API error
// code.
//
// Example:
//
//	token, err := client.Auth().GetAuthToken(ctx)
//	if err != nil {
//	    var authErr *tviso.AuthTokenError
//	    if errors.As(err, &authErr) {
//	        log.Fatalf("bad app credentials (code %d)", authErr.Code)
//	    }
//	    log.Fatal(err)
//	}
func (a *AuthService) GetAuthToken(ctx context.Context) (string, error) {
	c := a.client

	resp, err := c.request(ctx, endpointAuthToken, map[string]string{
		"id_api": c.app,
		"secret": c.secret,
	})
	if err != nil {
		return "", err
	}

	if resp.Error != 0 {
		return "", &AuthTokenError{Code: resp.Error}
	}

	c.authToken = resp.Get("auth_token").String()
	return c.authToken, nil
}

// GetUserToken exchanges a username and password for a user token.
//
// If a user token is already set and forceRefresh is false, the cached
// token is returned without a network call. Otherwise the login is
// performed with the remember flag set and the new token replaces the
// cached one. On failure the cached token is left as it was.
//
// Example:
//
//	userToken, err := client.Auth().GetUserToken(ctx, "user", "pass", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Store userToken and pass it as Config.UserToken next time
func (a *AuthService) GetUserToken(ctx context.Context, username, password string, forceRefresh bool) (string, error) {
	c := a.client

	if c.userToken != "" && !forceRefresh {
		return c.userToken, nil
	}

	resp, err := c.Query(ctx, endpointUserToken, map[string]string{
		"username": username,
		"password": password,
		"remember": "1",
	}, false)
	if err != nil {
		return "", err
	}

	if resp.Error != 0 {
		return "", &Error{Code: resp.Error, Endpoint: endpointUserToken}
	}

	token := resp.Get("user_token").String()
	if token == "" {
		return "", ErrEmptyUserToken
	}

	c.userToken = token
	return c.userToken, nil
}
