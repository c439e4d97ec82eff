package sonicos

// API defines the full SonicOS client surface. This abstraction allows
// consumers to substitute a mock in tests.
type API interface {
	// Login establishes an API session.
	Login() (map[string]any, error)

	// Logout tears down the API session.
	Logout() (map[string]any, error)

	// AddressObjects lists, creates, modifies, or deletes address objects.
	AddressObjects(opts AddressObjectOptions) (map[string]any, error)

	// AddressGroups lists, creates, modifies, or deletes address groups.
	AddressGroups(opts AddressGroupOptions) (map[string]any, error)

	// ServiceObjects lists, creates, modifies, or deletes service objects.
	ServiceObjects(opts ServiceObjectOptions) (map[string]any, error)

	// ServiceGroups lists, creates, modifies, or deletes service groups.
	ServiceGroups(opts ServiceGroupOptions) (map[string]any, error)

	// Zones lists, creates, modifies, or deletes zones.
	Zones(opts ZoneOptions) (map[string]any, error)

	// AccessRules lists, creates, modifies, or deletes access rules.
	AccessRules(opts AccessRuleOptions) (map[string]any, error)

	// NATPolicies lists, creates, modifies, or deletes NAT policies.
	NATPolicies(opts NATPolicyOptions) (map[string]any, error)

	// RoutePolicies lists, creates, modifies, or deletes route policies.
	RoutePolicies(opts RoutePolicyOptions) (map[string]any, error)

	// Version reports the appliance's firmware version information.
	Version() (map[string]any, error)

	// PendingChanges returns staged configuration changes.
	PendingChanges() (map[string]any, error)

	// CommitPending commits all staged configuration changes.
	CommitPending() (map[string]any, error)

	// Restart reboots the appliance.
	Restart() (map[string]any, error)
}

var _ API = (*Client)(nil)
