package sonicos

import (
	"errors"
	"net/url"
)

// selectorPath appends an optional name or uuid selector to a family's
// base path. The selectors are mutually exclusive.
func selectorPath(base, name, uuid string) (string, error) {
	if name != "" && uuid != "" {
		return "", errors.New("name and uuid are mutually exclusive")
	}
	if name != "" {
		return base + "/name/" + url.PathEscape(name), nil
	}
	if uuid != "" {
		return base + "/uuid/" + url.PathEscape(uuid), nil
	}
	return base, nil
}

// requestBody wraps an object list in the family's envelope key for verbs
// that carry a body. Returns nil otherwise.
func requestBody(method Method, key string, objects []map[string]any) any {
	if !method.hasBody(len(objects)) {
		return nil
	}
	if objects == nil {
		objects = []map[string]any{}
	}
	return map[string]any{key: objects}
}

// AddressObjectOptions configures one AddressObjects call.
type AddressObjectOptions struct {
	// Type picks the object family: ipv4 (default), ipv6, mac, or fqdn.
	Type AddressType
	// Method is the operation to perform; the zero value is a get.
	Method Method
	// Name targets a single object by name. Mutually exclusive with UUID.
	Name string
	// UUID targets a single object by UUID. Mutually exclusive with Name.
	UUID string
	// Objects is the payload for post, put, and bulk delete calls.
	Objects []map[string]any
}

// AddressObjects lists, creates, modifies, or deletes address objects.
// Without a selector or payload it lists every object of the given type.
func (c *Client) AddressObjects(opts AddressObjectOptions) (map[string]any, error) {
	seg, err := opts.Type.segment()
	if err != nil {
		return nil, err
	}
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("address-objects/"+seg, opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "address_objects", opts.Objects))
}

// AddressGroupOptions configures one AddressGroups call.
type AddressGroupOptions struct {
	// IPVersion picks ipv4 (default) or ipv6 groups.
	IPVersion IPVersion
	Method    Method
	Name      string
	UUID      string
	Objects   []map[string]any
}

// AddressGroups lists, creates, modifies, or deletes address groups.
func (c *Client) AddressGroups(opts AddressGroupOptions) (map[string]any, error) {
	seg, err := opts.IPVersion.segment()
	if err != nil {
		return nil, err
	}
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("address-groups/"+seg, opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "address_groups", opts.Objects))
}

// ServiceObjectOptions configures one ServiceObjects call.
type ServiceObjectOptions struct {
	Method  Method
	Name    string
	UUID    string
	Objects []map[string]any
}

// ServiceObjects lists, creates, modifies, or deletes service objects.
func (c *Client) ServiceObjects(opts ServiceObjectOptions) (map[string]any, error) {
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("service-objects", opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "service_objects", opts.Objects))
}

// ServiceGroupOptions configures one ServiceGroups call.
type ServiceGroupOptions struct {
	Method  Method
	Name    string
	UUID    string
	Objects []map[string]any
}

// ServiceGroups lists, creates, modifies, or deletes service groups.
func (c *Client) ServiceGroups(opts ServiceGroupOptions) (map[string]any, error) {
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("service-groups", opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "service_groups", opts.Objects))
}

// ZoneOptions configures one Zones call.
type ZoneOptions struct {
	Method  Method
	Name    string
	UUID    string
	Objects []map[string]any
}

// Zones lists, creates, modifies, or deletes zones. The appliance wraps
// single-zone bodies in a "zone" envelope and lists in "zones", so the
// envelope follows the selector.
func (c *Client) Zones(opts ZoneOptions) (map[string]any, error) {
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("zones", opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	key := "zones"
	if opts.Name != "" || opts.UUID != "" {
		key = "zone"
	}
	return c.do(verb, path, requestBody(opts.Method, key, opts.Objects))
}

// AccessRuleOptions configures one AccessRules call.
type AccessRuleOptions struct {
	// IPVersion picks ipv4 (default) or ipv6 rules.
	IPVersion IPVersion
	Method    Method
	Name      string
	UUID      string
	Objects   []map[string]any
}

// AccessRules lists, creates, modifies, or deletes access rules.
func (c *Client) AccessRules(opts AccessRuleOptions) (map[string]any, error) {
	seg, err := opts.IPVersion.segment()
	if err != nil {
		return nil, err
	}
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("access-rules/"+seg, opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "access_rules", opts.Objects))
}

// NATPolicyOptions configures one NATPolicies call.
type NATPolicyOptions struct {
	IPVersion IPVersion
	Method    Method
	Name      string
	UUID      string
	Objects   []map[string]any
}

// NATPolicies lists, creates, modifies, or deletes NAT policies.
func (c *Client) NATPolicies(opts NATPolicyOptions) (map[string]any, error) {
	seg, err := opts.IPVersion.segment()
	if err != nil {
		return nil, err
	}
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("nat-policies/"+seg, opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "nat_policies", opts.Objects))
}

// RoutePolicyOptions configures one RoutePolicies call.
type RoutePolicyOptions struct {
	IPVersion IPVersion
	Method    Method
	Name      string
	UUID      string
	Objects   []map[string]any
}

// RoutePolicies lists, creates, modifies, or deletes route policies.
func (c *Client) RoutePolicies(opts RoutePolicyOptions) (map[string]any, error) {
	seg, err := opts.IPVersion.segment()
	if err != nil {
		return nil, err
	}
	verb, err := opts.Method.verb()
	if err != nil {
		return nil, err
	}
	path, err := selectorPath("route-policies/"+seg, opts.Name, opts.UUID)
	if err != nil {
		return nil, err
	}
	return c.do(verb, path, requestBody(opts.Method, "route_policies", opts.Objects))
}
