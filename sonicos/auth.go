package sonicos

import (
	"net/http"
	"net/http/cookiejar"
)

// Login establishes an API session with a POST to the auth endpoint. On
// success the client marks the session authenticated and its cookie jar
// retains any session cookie the appliance set; the status envelope from
// the response is returned. Any failure, a non-2xx status (returned as
// AuthenticationError) or an undecodable body, leaves the session
// unauthenticated.
func (c *Client) Login() (map[string]any, error) {
	status, body, err := c.send(http.MethodPost, "auth", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &AuthenticationError{StatusCode: status, Body: body}
	}

	result, err := decodeBody(body)
	if err != nil {
		return nil, err
	}
	c.authenticated = true
	c.logger.Debug("session established")
	return result, nil
}

// Logout tears down the API session with a DELETE to the auth endpoint.
// It may be called regardless of session state; the appliance answers an
// unauthenticated logout with its usual status envelope. On success the
// session is cleared, including any stored cookies. Any failure, a non-2xx
// status (returned as AuthenticationError) or an undecodable body, leaves
// the session state untouched.
func (c *Client) Logout() (map[string]any, error) {
	status, body, err := c.send(http.MethodDelete, "auth", nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &AuthenticationError{StatusCode: status, Body: body}
	}

	result, err := decodeBody(body)
	if err != nil {
		return nil, err
	}
	c.authenticated = false
	if jar, err := cookiejar.New(nil); err == nil {
		c.httpClient.Jar = jar
	}
	c.logger.Debug("session closed")
	return result, nil
}
