// Package sonicos provides a client for the SonicOS management API exposed
// by SonicWall firewall appliances. A Client holds one API session and maps
// each call onto a single HTTPS request, returning the appliance's JSON
// response as a map without transforming it.
//
// The appliance must have RFC-2617 HTTP Basic Access authentication
// enabled; credentials are attached to every request and a session cookie
// set at login is replayed automatically.
package sonicos

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"
)

const (
	defaultPort    = 443
	defaultTimeout = 30 * time.Second
)

// Config holds the settings for a Client. Host, Username, and Password are
// required; everything else has a usable zero value.
type Config struct {
	Host     string
	Port     int // defaults to 443
	Username string
	Password string

	// Insecure disables TLS certificate verification. Verification is on
	// by default; failures surface as TransportError.
	Insecure bool

	// TLSConfig overrides Insecure when set. Use it to pin a custom CA.
	TLSConfig *tls.Config

	// Timeout bounds each request, defaulting to 30 seconds.
	Timeout time.Duration

	// Logger receives debug-level request logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a SonicOS API client holding one session. The session state is
// the only mutable field, and the client does not lock around it: callers
// issuing requests from multiple goroutines must serialize Login and
// Logout against dependent calls themselves.
type Client struct {
	baseURL       string
	username      string
	password      string
	httpClient    *http.Client
	logger        *slog.Logger
	authenticated bool
}

// New creates a Client from cfg. It stores configuration and performs no
// network I/O; the session is established by Login.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("host is required")
	}
	if cfg.Username == "" {
		return nil, errors.New("username is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("password is required")
	}

	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tlsConfig := cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: cfg.Insecure, //nolint:gosec // explicit opt-out, verification is the default
			MinVersion:         tls.VersionTLS12,
		}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL:  fmt.Sprintf("https://%s:%d/api/sonicos/", cfg.Host, port),
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
			},
		},
		logger: logger.With("component", "sonicos"),
	}, nil
}

// send issues one request against the API and returns the status code and
// raw response body. Failures below the HTTP layer come back as
// TransportError.
func (c *Client) send(verb, path string, body any) (int, []byte, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(verb, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("request", "method", verb, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: verb + " " + url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: verb + " " + url, Err: err}
	}

	c.logger.Debug("response", "method", verb, "path", path, "status", resp.StatusCode)

	return resp.StatusCode, respBody, nil
}

// do issues one authenticated API request and decodes the JSON response.
// It enforces the session invariant: without a prior successful Login the
// call fails before any request is made.
func (c *Client) do(verb, path string, body any) (map[string]any, error) {
	if !c.authenticated {
		return nil, ErrNotAuthenticated
	}

	status, respBody, err := c.send(verb, path, body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &RequestError{
			Method:     verb,
			URL:        c.baseURL + path,
			StatusCode: status,
			Body:       respBody,
		}
	}

	return decodeBody(respBody)
}

// decodeBody parses a JSON object response. An empty body decodes to an
// empty map.
func decodeBody(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
