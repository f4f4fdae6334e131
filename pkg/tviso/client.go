package tviso

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	App        string       // Required: Tviso application id
	Secret     string       // Required: Tviso application secret
	UserToken  string       // Optional: user token from a previous login
	HTTPClient *http.Client // Optional: HTTP client (defaults to one with TLS verification disabled)
	BaseURL    string       // Optional: Base URL for API (defaults to Tviso API, used for testing)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Tviso API operations.
//
// A Client keeps its tokens in plain fields and must not be used from
// more than one goroutine at a time.
type Client struct {
	app        string
	secret     string
	authToken  string
	userToken  string
	httpClient *http.Client
	baseURL    string
	logger     Logger

	auth  *AuthService
	media *MediaService
}

const (
	// DefaultBaseURL is the default Tviso API endpoint.
	DefaultBaseURL = "https://api.tviso.com/"

	defaultTimeout = 30 * time.Second
)

// NewClient creates a new Tviso API client.
//
// Returns ErrMissingConfiguration if App or Secret is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.App == "" {
		return nil, fmt.Errorf("%w: app", ErrMissingConfiguration)
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret", ErrMissingConfiguration)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newDefaultHTTPClient()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		app:        cfg.App,
		secret:     cfg.Secret,
		userToken:  cfg.UserToken,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}

	c.auth = &AuthService{client: c}
	c.media = &MediaService{client: c}

	return c, nil
}

// newDefaultHTTPClient returns a client that skips certificate
// verification. The Tviso API has historically served certificates
// that fail verification.
func newDefaultHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return &http.Client{
		Transport: transport,
		Timeout:   defaultTimeout,
	}
}

// Auth returns the authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Media returns the media service.
func (c *Client) Media() *MediaService {
	return c.media
}

// AuthToken returns the cached application auth token, or "" if none
// has been fetched yet.
func (c *Client) AuthToken() string {
	return c.authToken
}

// ResetAuthToken drops the cached application auth token. The next
// Query fetches a new one.
func (c *Client) ResetAuthToken() {
	c.authToken = ""
}

// UserToken returns the current user token.
func (c *Client) UserToken() string {
	return c.userToken
}

// SetUserToken sets the user token for requests that require a user.
func (c *Client) SetUserToken(token string) {
	c.userToken = token
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
