package tviso

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// Headers sent with every request. The API is known to answer
// differently to clients that do not look like a browser.
const (
	userAgent      = "Mozilla/5.0 (Windows; U; Windows NT 5.2; en-US; rv:1.8.1.7) Gecko/20070914 Firefox/2.0.0.7"
	acceptHeader   = "text/xml,application/xml,application/xhtml+xml,text/html;q=0.9,text/plain;q=0.8,image/png,*/*;q=0.5"
	acceptCharset  = "ISO-8859-1,utf-8;q=0.7,*;q=0.7"
	acceptLanguage = "en-us,en;q=0.5"
)

// request makes a single HTTP request to the Tviso API.
//
// Parameters are sent as a form-encoded POST body; with no parameters
// the request is a plain GET. The body is parsed as JSON whatever the
// HTTP status is. Nothing is retried.
func (c *Client) request(ctx context.Context, endpoint string, params map[string]string) (*Response, error) {
	if endpoint == "" {
		return nil, ErrMissingURL
	}

	reqURL := c.baseURL + endpoint

	method := http.MethodGet
	var body io.Reader
	if len(params) > 0 {
		formData := url.Values{}
		for k, v := range params {
			formData.Set(k, v)
		}
		method = http.MethodPost
		body = strings.NewReader(formData.Encode())
	}

	c.logDebugf("tviso: %s %s", method, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Cache-Control", "max-age=0")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Keep-Alive", "300")
	req.Header.Set("Accept-Charset", acceptCharset)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}

	r := newResponse(data)
	c.logDebugf("tviso: %s returned error=%d", endpoint, r.Error)
	return r, nil
}

// Query performs an authenticated call against endpoint.
//
// The application auth token is fetched on first use. When requiresUser
// is set the user token is attached as well, and ErrMissingUserToken is
// returned without touching the network if none is set. A response
// carrying ErrCodeInvalidUserToken is reported as ErrMissingUserToken
// for every endpoint. Any other response, including other error codes,
// is returned as is.
func (c *Client) Query(ctx context.Context, endpoint string, params map[string]string, requiresUser bool) (*Response, error) {
	if c.authToken == "" {
		if _, err := c.auth.GetAuthToken(ctx); err != nil {
			return nil, err
		}
	}

	if requiresUser && c.userToken == "" {
		return nil, ErrMissingUserToken
	}

	reqParams := make(map[string]string, len(params)+2)
	for k, v := range params {
		reqParams[k] = v
	}
	if requiresUser {
		reqParams["user_token"] = c.userToken
	}
	reqParams["auth_token"] = c.authToken

	resp, err := c.request(ctx, endpoint, reqParams)
	if err != nil {
		return nil, err
	}

	if resp.Error == ErrCodeInvalidUserToken {
		return nil, ErrMissingUserToken
	}

	return resp, nil
}
