package sonicos

// MockAPI implements API with canned appliance responses for tests and
// development. Every call is recorded in Calls; setting Err makes all
// operations fail with it.
type MockAPI struct {
	// Calls records operation names in invocation order.
	Calls []string
	// Err, when set, is returned by every operation.
	Err error
}

var _ API = (*MockAPI)(nil)

// statusSuccess is the envelope the appliance returns for accepted
// configuration calls.
func statusSuccess() map[string]any {
	return map[string]any{
		"status": map[string]any{
			"success": true,
			"info": []any{
				map[string]any{"level": "info", "code": "E_OK", "message": "Success."},
			},
		},
	}
}

func (m *MockAPI) record(op string) error {
	m.Calls = append(m.Calls, op)
	return m.Err
}

// isWrite reports whether the options describe a configuration change, in
// which case the mock answers with the status envelope instead of a list.
func isWrite(method Method) bool {
	return method != "" && method != MethodGet
}

func (m *MockAPI) Login() (map[string]any, error) {
	if err := m.record("Login"); err != nil {
		return nil, err
	}
	return statusSuccess(), nil
}

func (m *MockAPI) Logout() (map[string]any, error) {
	if err := m.record("Logout"); err != nil {
		return nil, err
	}
	return statusSuccess(), nil
}

func (m *MockAPI) AddressObjects(opts AddressObjectOptions) (map[string]any, error) {
	if err := m.record("AddressObjects"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"address_objects": []any{
			map[string]any{"ipv4": map[string]any{
				"name": "LAN Primary Subnet",
				"uuid": "7a2b1df6-3f10-d1e4-0a00-c0eae4811996",
				"zone": "LAN",
				"network": map[string]any{
					"subnet": "192.168.168.0",
					"mask":   "255.255.255.0",
				},
			}},
			map[string]any{"ipv4": map[string]any{
				"name": "Web Server",
				"uuid": "31a6ae2c-a342-0d1e-0b00-c0eae4811996",
				"zone": "DMZ",
				"host": map[string]any{"ip": "192.168.170.10"},
			}},
		},
	}, nil
}

func (m *MockAPI) AddressGroups(opts AddressGroupOptions) (map[string]any, error) {
	if err := m.record("AddressGroups"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"address_groups": []any{
			map[string]any{"ipv4": map[string]any{
				"name": "DMZ Servers",
				"uuid": "9f1c44d8-1b02-aa10-0700-c0eae4811996",
				"address_object": map[string]any{
					"ipv4": []any{map[string]any{"name": "Web Server"}},
				},
			}},
		},
	}, nil
}

func (m *MockAPI) ServiceObjects(opts ServiceObjectOptions) (map[string]any, error) {
	if err := m.record("ServiceObjects"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"service_objects": []any{
			map[string]any{
				"name": "HTTP",
				"uuid": "44b4cf22-0000-0d00-0100-c0eae4811996",
				"TCP":  map[string]any{"begin": 80, "end": 80},
			},
			map[string]any{
				"name": "HTTPS",
				"uuid": "44b4cf22-0000-0d00-0200-c0eae4811996",
				"TCP":  map[string]any{"begin": 443, "end": 443},
			},
		},
	}, nil
}

func (m *MockAPI) ServiceGroups(opts ServiceGroupOptions) (map[string]any, error) {
	if err := m.record("ServiceGroups"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"service_groups": []any{
			map[string]any{
				"name": "Web Services",
				"uuid": "5c0d2a18-0000-0d00-0300-c0eae4811996",
				"service_object": []any{
					map[string]any{"name": "HTTP"},
					map[string]any{"name": "HTTPS"},
				},
			},
		},
	}, nil
}

func (m *MockAPI) Zones(opts ZoneOptions) (map[string]any, error) {
	if err := m.record("Zones"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	zones := []any{
		map[string]any{
			"name":            "LAN",
			"uuid":            "0e20b9a2-6c30-0d1e-0100-c0eae4811996",
			"security_type":   "trusted",
			"interface_trust": true,
		},
		map[string]any{
			"name":            "WAN",
			"uuid":            "0e20b9a2-6c30-0d1e-0200-c0eae4811996",
			"security_type":   "untrusted",
			"interface_trust": false,
		},
		map[string]any{
			"name":            "DMZ",
			"uuid":            "0e20b9a2-6c30-0d1e-0300-c0eae4811996",
			"security_type":   "public",
			"interface_trust": false,
		},
	}
	if opts.Name != "" || opts.UUID != "" {
		return map[string]any{"zone": zones[0]}, nil
	}
	return map[string]any{"zones": zones}, nil
}

func (m *MockAPI) AccessRules(opts AccessRuleOptions) (map[string]any, error) {
	if err := m.record("AccessRules"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"access_rules": []any{
			map[string]any{"ipv4": map[string]any{
				"name":   "Allow DMZ Web",
				"uuid":   "c81a3e90-0000-0d1e-0400-c0eae4811996",
				"from":   "WAN",
				"to":     "DMZ",
				"action": "allow",
				"source": map[string]any{
					"address": map[string]any{"any": true},
				},
				"destination": map[string]any{
					"address": map[string]any{"name": "Web Server"},
				},
				"service": map[string]any{"name": "Web Services"},
				"enable":  true,
			}},
		},
	}, nil
}

func (m *MockAPI) NATPolicies(opts NATPolicyOptions) (map[string]any, error) {
	if err := m.record("NATPolicies"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"nat_policies": []any{
			map[string]any{"ipv4": map[string]any{
				"name":     "Inbound Web NAT",
				"uuid":     "d42f1770-0000-0d1e-0500-c0eae4811996",
				"inbound":  "X1",
				"outbound": "X2",
				"source":   map[string]any{"any": true},
				"translated_destination": map[string]any{
					"name": "Web Server",
				},
				"enable": true,
			}},
		},
	}, nil
}

func (m *MockAPI) RoutePolicies(opts RoutePolicyOptions) (map[string]any, error) {
	if err := m.record("RoutePolicies"); err != nil {
		return nil, err
	}
	if isWrite(opts.Method) {
		return statusSuccess(), nil
	}
	return map[string]any{
		"route_policies": []any{
			map[string]any{"ipv4": map[string]any{
				"name":      "Default Route",
				"uuid":      "e63d0b58-0000-0d1e-0600-c0eae4811996",
				"interface": "X1",
				"gateway":   "203.0.113.1",
				"destination": map[string]any{
					"any": true,
				},
				"metric": 1,
			}},
		},
	}, nil
}

func (m *MockAPI) Version() (map[string]any, error) {
	if err := m.record("Version"); err != nil {
		return nil, err
	}
	return map[string]any{
		"firmware_version": "SonicOS 7.0.1-5030",
		"serial_number":    "2CB8ED694811",
		"model":            "TZ 470",
	}, nil
}

func (m *MockAPI) PendingChanges() (map[string]any, error) {
	if err := m.record("PendingChanges"); err != nil {
		return nil, err
	}
	return map[string]any{
		"config_pending": map[string]any{
			"address_objects": []any{
				map[string]any{"ipv4": map[string]any{
					"name": "Staging Host",
					"zone": "LAN",
					"host": map[string]any{"ip": "192.168.168.50"},
				}},
			},
		},
	}, nil
}

func (m *MockAPI) CommitPending() (map[string]any, error) {
	if err := m.record("CommitPending"); err != nil {
		return nil, err
	}
	return statusSuccess(), nil
}

func (m *MockAPI) Restart() (map[string]any, error) {
	if err := m.record("Restart"); err != nil {
		return nil, err
	}
	return statusSuccess(), nil
}
