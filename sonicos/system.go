package sonicos

import "net/http"

// Version reports the appliance's firmware version information.
func (c *Client) Version() (map[string]any, error) {
	return c.do(http.MethodGet, "version", nil)
}

// PendingChanges returns configuration changes staged but not yet
// committed to the running config.
func (c *Client) PendingChanges() (map[string]any, error) {
	return c.do(http.MethodGet, "config/pending", nil)
}

// CommitPending commits all staged configuration changes. Changes made
// through the other accessors do not take effect until committed.
func (c *Client) CommitPending() (map[string]any, error) {
	return c.do(http.MethodPost, "config/pending", nil)
}

// Restart reboots the appliance and returns its acknowledgment. The
// session dies with the restart; log in again once the appliance is back.
func (c *Client) Restart() (map[string]any, error) {
	return c.do(http.MethodPost, "restart", nil)
}
