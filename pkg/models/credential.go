package models

import "github.com/google/uuid"

// AccessType classifies an other-access credential. The set is closed at the
// model level, but decoding preserves unknown types verbatim (see PlatformKey).
type AccessType string

const (
	AccessEmail AccessType = "email"
	AccessFTP   AccessType = "ftp"
	AccessSSH   AccessType = "ssh"
	AccessCMS   AccessType = "cms"
	AccessOther AccessType = "other"
)

// KnownAccessType reports whether t is one of the five defined access types.
func KnownAccessType(t AccessType) bool {
	switch t {
	case AccessEmail, AccessFTP, AccessSSH, AccessCMS, AccessOther:
		return true
	}
	return false
}

// Credential is a username/password pair with free-form notes. Fields default
// to empty strings; values are stored in plaintext (a known limitation of the
// system, not a design goal).
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// IsZero reports whether the credential carries no data at all.
func (c Credential) IsZero() bool {
	return c.Username == "" && c.Password == "" && c.Notes == ""
}

// Hosting is the project's hosting account. URL lives only on the in-memory
// aggregate: the credential table has no column for it, so it does not survive
// a round trip through the store.
type Hosting struct {
	Provider   string     `json:"provider"`
	Credential Credential `json:"credential"`
	URL        string     `json:"url,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// OtherAccess is an additional access entry (mail account, FTP login, CMS
// admin, ...). Its ID regenerates on every project update because the update
// path replaces all access rows wholesale.
type OtherAccess struct {
	ID         uuid.UUID  `json:"id"`
	Type       AccessType `json:"type"`
	Name       string     `json:"name"`
	Credential Credential `json:"credential"`
	Notes      string     `json:"notes,omitempty"`
}
