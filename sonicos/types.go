package sonicos

import (
	"fmt"
	"net/http"
)

// Method selects the operation a resource accessor performs. The zero
// value is a GET.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
)

// verb maps the Method onto the HTTP verb it issues.
func (m Method) verb() (string, error) {
	switch m {
	case "", MethodGet:
		return http.MethodGet, nil
	case MethodPost:
		return http.MethodPost, nil
	case MethodPut:
		return http.MethodPut, nil
	case MethodDelete:
		return http.MethodDelete, nil
	default:
		return "", fmt.Errorf("unsupported method %q", string(m))
	}
}

// hasBody reports whether requests with this method carry a JSON body.
// Deletes carry one only when an object list is supplied (bulk delete).
func (m Method) hasBody(objectCount int) bool {
	switch m {
	case MethodPost, MethodPut:
		return true
	case MethodDelete:
		return objectCount > 0
	default:
		return false
	}
}

// AddressType selects an address object family. The zero value is IPv4.
type AddressType string

const (
	TypeIPv4 AddressType = "ipv4"
	TypeIPv6 AddressType = "ipv6"
	TypeMAC  AddressType = "mac"
	TypeFQDN AddressType = "fqdn"
)

// segment returns the path segment for the address type.
func (t AddressType) segment() (string, error) {
	switch t {
	case "":
		return string(TypeIPv4), nil
	case TypeIPv4, TypeIPv6, TypeMAC, TypeFQDN:
		return string(t), nil
	default:
		return "", fmt.Errorf("unsupported address type %q", string(t))
	}
}

// IPVersion selects between the IPv4 and IPv6 variants of a resource
// family. The zero value is IPv4.
type IPVersion string

const (
	IPv4 IPVersion = "ipv4"
	IPv6 IPVersion = "ipv6"
)

// segment returns the path segment for the IP version.
func (v IPVersion) segment() (string, error) {
	switch v {
	case "":
		return string(IPv4), nil
	case IPv4, IPv6:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported ip version %q", string(v))
	}
}

// HostAddressObject builds a single-host IPv4 address object entry in the
// shape the appliance expects, for use in AddressObjectOptions.Objects.
func HostAddressObject(name, zone, ip string) map[string]any {
	return map[string]any{
		"ipv4": map[string]any{
			"name": name,
			"zone": zone,
			"host": map[string]any{
				"ip": ip,
			},
		},
	}
}
