package sonicos

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallsRequireLogin(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	calls := map[string]func() (map[string]any, error){
		"AddressObjects": func() (map[string]any, error) { return c.AddressObjects(AddressObjectOptions{}) },
		"AddressGroups":  func() (map[string]any, error) { return c.AddressGroups(AddressGroupOptions{}) },
		"ServiceObjects": func() (map[string]any, error) { return c.ServiceObjects(ServiceObjectOptions{}) },
		"ServiceGroups":  func() (map[string]any, error) { return c.ServiceGroups(ServiceGroupOptions{}) },
		"Zones":          func() (map[string]any, error) { return c.Zones(ZoneOptions{}) },
		"AccessRules":    func() (map[string]any, error) { return c.AccessRules(AccessRuleOptions{}) },
		"NATPolicies":    func() (map[string]any, error) { return c.NATPolicies(NATPolicyOptions{}) },
		"RoutePolicies":  func() (map[string]any, error) { return c.RoutePolicies(RoutePolicyOptions{}) },
		"Version":        c.Version,
		"PendingChanges": c.PendingChanges,
		"CommitPending":  c.CommitPending,
		"Restart":        c.Restart,
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			_, err := call()
			require.ErrorIs(t, err, ErrNotAuthenticated)
		})
	}

	assert.Equal(t, 0, requests, "no HTTP request may be issued before login")
}

func TestAddressObjectsPassthrough(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"address_objects":[{"name":"obj1"}]}`))
	})
	c := newLoggedInClient(t, server.URL)

	got, err := c.AddressObjects(AddressObjectOptions{Type: TypeIPv4})
	require.NoError(t, err)

	want := map[string]any{
		"address_objects": []any{
			map[string]any{"name": "obj1"},
		},
	}
	assert.Equal(t, want, got)
}

func TestRequestConstruction(t *testing.T) {
	hostObject := []map[string]any{HostAddressObject("web01", "DMZ", "192.168.170.10")}

	tests := []struct {
		name       string
		call       func(c *Client) (map[string]any, error)
		wantMethod string
		wantPath   string
		wantBody   map[string]any // nil means the request must not carry a body
	}{
		{
			name: "address objects default list",
			call: func(c *Client) (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{})
			},
			wantMethod: http.MethodGet,
			wantPath:   "address-objects/ipv4",
		},
		{
			name: "address objects fqdn list",
			call: func(c *Client) (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{Type: TypeFQDN})
			},
			wantMethod: http.MethodGet,
			wantPath:   "address-objects/fqdn",
		},
		{
			name: "address objects get by name escapes the selector",
			call: func(c *Client) (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{Name: "LAN Primary Subnet"})
			},
			wantMethod: http.MethodGet,
			wantPath:   "address-objects/ipv4/name/LAN%20Primary%20Subnet",
		},
		{
			name: "address objects create",
			call: func(c *Client) (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{Method: MethodPost, Objects: hostObject})
			},
			wantMethod: http.MethodPost,
			wantPath:   "address-objects/ipv4",
			wantBody: map[string]any{
				"address_objects": []any{
					map[string]any{"ipv4": map[string]any{
						"name": "web01",
						"zone": "DMZ",
						"host": map[string]any{"ip": "192.168.170.10"},
					}},
				},
			},
		},
		{
			name: "address groups ipv6 update by name",
			call: func(c *Client) (map[string]any, error) {
				return c.AddressGroups(AddressGroupOptions{
					IPVersion: IPv6,
					Method:    MethodPut,
					Name:      "v6-servers",
					Objects:   []map[string]any{{"ipv6": map[string]any{"name": "v6-servers"}}},
				})
			},
			wantMethod: http.MethodPut,
			wantPath:   "address-groups/ipv6/name/v6-servers",
			wantBody: map[string]any{
				"address_groups": []any{
					map[string]any{"ipv6": map[string]any{"name": "v6-servers"}},
				},
			},
		},
		{
			name: "service objects delete by name carries no body",
			call: func(c *Client) (map[string]any, error) {
				return c.ServiceObjects(ServiceObjectOptions{Method: MethodDelete, Name: "HTTP"})
			},
			wantMethod: http.MethodDelete,
			wantPath:   "service-objects/name/HTTP",
		},
		{
			name: "service objects bulk delete carries the object list",
			call: func(c *Client) (map[string]any, error) {
				return c.ServiceObjects(ServiceObjectOptions{
					Method:  MethodDelete,
					Objects: []map[string]any{{"name": "HTTP"}, {"name": "HTTPS"}},
				})
			},
			wantMethod: http.MethodDelete,
			wantPath:   "service-objects",
			wantBody: map[string]any{
				"service_objects": []any{
					map[string]any{"name": "HTTP"},
					map[string]any{"name": "HTTPS"},
				},
			},
		},
		{
			name: "service groups get by uuid",
			call: func(c *Client) (map[string]any, error) {
				return c.ServiceGroups(ServiceGroupOptions{UUID: "5c0d2a18-0000-0d00-0300-c0eae4811996"})
			},
			wantMethod: http.MethodGet,
			wantPath:   "service-groups/uuid/5c0d2a18-0000-0d00-0300-c0eae4811996",
		},
		{
			name: "zones list",
			call: func(c *Client) (map[string]any, error) {
				return c.Zones(ZoneOptions{})
			},
			wantMethod: http.MethodGet,
			wantPath:   "zones",
		},
		{
			name: "zones create uses the plural envelope",
			call: func(c *Client) (map[string]any, error) {
				return c.Zones(ZoneOptions{
					Method:  MethodPost,
					Objects: []map[string]any{{"name": "IOT", "security_type": "public"}},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "zones",
			wantBody: map[string]any{
				"zones": []any{
					map[string]any{"name": "IOT", "security_type": "public"},
				},
			},
		},
		{
			name: "zone update by name uses the singular envelope",
			call: func(c *Client) (map[string]any, error) {
				return c.Zones(ZoneOptions{
					Method:  MethodPut,
					Name:    "DMZ",
					Objects: []map[string]any{{"name": "DMZ", "security_type": "public"}},
				})
			},
			wantMethod: http.MethodPut,
			wantPath:   "zones/name/DMZ",
			wantBody: map[string]any{
				"zone": []any{
					map[string]any{"name": "DMZ", "security_type": "public"},
				},
			},
		},
		{
			name: "zone delete by uuid",
			call: func(c *Client) (map[string]any, error) {
				return c.Zones(ZoneOptions{Method: MethodDelete, UUID: "0e20b9a2-6c30-0d1e-0300-c0eae4811996"})
			},
			wantMethod: http.MethodDelete,
			wantPath:   "zones/uuid/0e20b9a2-6c30-0d1e-0300-c0eae4811996",
		},
		{
			name: "access rules ipv6 list",
			call: func(c *Client) (map[string]any, error) {
				return c.AccessRules(AccessRuleOptions{IPVersion: IPv6})
			},
			wantMethod: http.MethodGet,
			wantPath:   "access-rules/ipv6",
		},
		{
			name: "access rule get by uuid",
			call: func(c *Client) (map[string]any, error) {
				return c.AccessRules(AccessRuleOptions{UUID: "c81a3e90-0000-0d1e-0400-c0eae4811996"})
			},
			wantMethod: http.MethodGet,
			wantPath:   "access-rules/ipv4/uuid/c81a3e90-0000-0d1e-0400-c0eae4811996",
		},
		{
			name: "nat policies create",
			call: func(c *Client) (map[string]any, error) {
				return c.NATPolicies(NATPolicyOptions{
					Method:  MethodPost,
					Objects: []map[string]any{{"ipv4": map[string]any{"name": "Inbound Web NAT"}}},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "nat-policies/ipv4",
			wantBody: map[string]any{
				"nat_policies": []any{
					map[string]any{"ipv4": map[string]any{"name": "Inbound Web NAT"}},
				},
			},
		},
		{
			name: "route policies get by uuid",
			call: func(c *Client) (map[string]any, error) {
				return c.RoutePolicies(RoutePolicyOptions{UUID: "e63d0b58-0000-0d1e-0600-c0eae4811996"})
			},
			wantMethod: http.MethodGet,
			wantPath:   "route-policies/ipv4/uuid/e63d0b58-0000-0d1e-0600-c0eae4811996",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			var gotBody []byte
			server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.EscapedPath()
				gotBody, _ = io.ReadAll(r.Body)
				_, _ = w.Write([]byte(`{"status":{"success":true}}`))
			})
			c := newLoggedInClient(t, server.URL)

			_, err := tt.call(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, "/api/sonicos/"+tt.wantPath, gotPath)

			if tt.wantBody == nil {
				assert.Empty(t, gotBody, "request must not carry a body")
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(gotBody, &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	resourceRequests := 0
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		resourceRequests++
		_, _ = w.Write([]byte(`{}`))
	})
	c := newLoggedInClient(t, server.URL)

	tests := []struct {
		name    string
		call    func() (map[string]any, error)
		wantErr string
	}{
		{
			name: "unknown method",
			call: func() (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{Method: "patch"})
			},
			wantErr: "unsupported method",
		},
		{
			name: "unknown address type",
			call: func() (map[string]any, error) {
				return c.AddressObjects(AddressObjectOptions{Type: "cidr"})
			},
			wantErr: "unsupported address type",
		},
		{
			name: "unknown ip version",
			call: func() (map[string]any, error) {
				return c.NATPolicies(NATPolicyOptions{IPVersion: "ipv5"})
			},
			wantErr: "unsupported ip version",
		},
		{
			name: "name and uuid together",
			call: func() (map[string]any, error) {
				return c.Zones(ZoneOptions{Name: "LAN", UUID: "0e20b9a2-6c30-0d1e-0100-c0eae4811996"})
			},
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Equal(t, 0, resourceRequests, "invalid arguments must fail before any request")
}

func TestRequestErrorOnServerFailure(t *testing.T) {
	body := `{"status":{"success":false,"info":[{"level":"error","code":"E_INTERNAL","message":"Internal error."}]}}`
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(body))
	})
	c := newLoggedInClient(t, server.URL)

	_, err := c.Zones(ZoneOptions{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, body, string(reqErr.Body))
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Contains(t, reqErr.URL, "/api/sonicos/zones")
}

func TestHostAddressObject(t *testing.T) {
	got := HostAddressObject("web01", "DMZ", "192.168.170.10")
	want := map[string]any{
		"ipv4": map[string]any{
			"name": "web01",
			"zone": "DMZ",
			"host": map[string]any{"ip": "192.168.170.10"},
		},
	}
	assert.Equal(t, want, got)
}
