package models

import "strings"

// PlatformKind discriminates the three credential classes stored in the flat
// project_credentials table.
type PlatformKind int

const (
	// PlatformMain is the project's primary credential pair.
	PlatformMain PlatformKind = iota
	// PlatformHosting is the hosting provider credential ("hosting-{provider}").
	PlatformHosting
	// PlatformAccess is an other-access credential ("{type}-{name}").
	PlatformAccess
)

const hostingPrefix = "hosting-"

// PlatformKey is the tagged form of a credential row's platform discriminant.
// Parsing and printing happen here and nowhere else; application code never
// re-derives the tag by string splitting.
type PlatformKey struct {
	Kind PlatformKind

	// Provider is set for PlatformHosting keys.
	Provider string

	// AccessType and AccessName are set for PlatformAccess keys. AccessType is
	// kept verbatim even when it is not one of the known access types -
	// resilience over strict validation.
	AccessType string
	AccessName string
}

// MainKey returns the key for the primary credential row.
func MainKey() PlatformKey {
	return PlatformKey{Kind: PlatformMain}
}

// HostingKey returns the key for a hosting credential row.
func HostingKey(provider string) PlatformKey {
	return PlatformKey{Kind: PlatformHosting, Provider: provider}
}

// AccessKey returns the key for an other-access credential row.
func AccessKey(accessType, name string) PlatformKey {
	return PlatformKey{Kind: PlatformAccess, AccessType: accessType, AccessName: name}
}

// ParsePlatformKey decodes a stored platform string back into its tagged form.
// Exact "main" wins, then the "hosting-" prefix; everything else splits on the
// FIRST hyphen into (type, name). A name that itself contains hyphens therefore
// truncates on round trip - a known lossy edge case, kept deliberately.
func ParsePlatformKey(platform string) PlatformKey {
	if platform == "main" {
		return MainKey()
	}
	if strings.HasPrefix(platform, hostingPrefix) {
		return HostingKey(strings.TrimPrefix(platform, hostingPrefix))
	}
	if idx := strings.Index(platform, "-"); idx >= 0 {
		return AccessKey(platform[:idx], platform[idx+1:])
	}
	return AccessKey(platform, "")
}

// String renders the key in its persisted form.
func (k PlatformKey) String() string {
	switch k.Kind {
	case PlatformMain:
		return "main"
	case PlatformHosting:
		return hostingPrefix + k.Provider
	default:
		return k.AccessType + "-" + k.AccessName
	}
}
