package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agencydesk/backoffice/pkg/models"
)

// CredentialRow mirrors one row of the project_credentials table. The three
// credential classes of a project (main, hosting, other access) all flatten
// into this shape, discriminated by the platform key.
type CredentialRow struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Platform  string
	Username  string
	Password  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DecodedCredentials is the result of decoding a project's credential rows
// back into the aggregate shape. Fields are always usable: missing rows leave
// blank structures, never nil.
type DecodedCredentials struct {
	Main        models.Credential
	Hosting     models.Hosting
	OtherAccess []models.OtherAccess
}

// EncodeCredentialRows flattens the project's credential classes into rows.
//   - one "main" row, only when the main credential carries data
//   - one "hosting-{provider}" row, only when a provider is set
//   - one "{type}-{name}" row per other-access entry
//
// The notes column holds the per-class notes field (main credential notes,
// hosting notes, access entry notes respectively).
func EncodeCredentialRows(p *models.Project) []CredentialRow {
	var rows []CredentialRow

	if !p.Credentials.IsZero() {
		rows = append(rows, CredentialRow{
			ProjectID: p.ID,
			Platform:  models.MainKey().String(),
			Username:  p.Credentials.Username,
			Password:  p.Credentials.Password,
			Notes:     p.Credentials.Notes,
		})
	}

	if p.Hosting.Provider != "" {
		rows = append(rows, CredentialRow{
			ProjectID: p.ID,
			Platform:  models.HostingKey(p.Hosting.Provider).String(),
			Username:  p.Hosting.Credential.Username,
			Password:  p.Hosting.Credential.Password,
			Notes:     p.Hosting.Notes,
		})
	}

	for _, a := range p.OtherAccess {
		rows = append(rows, CredentialRow{
			ProjectID: p.ID,
			Platform:  models.AccessKey(string(a.Type), a.Name).String(),
			Username:  a.Credential.Username,
			Password:  a.Credential.Password,
			Notes:     a.Notes,
		})
	}

	return rows
}

// DecodeCredentialRows reassembles the aggregate's credential structures from
// stored rows. At most one hosting row may exist per project; more than one is
// a store contract violation and returns an error. Access rows with an
// unrecognized type are preserved with the stored string forced into the type
// field rather than rejected.
func DecodeCredentialRows(rows []CredentialRow) (DecodedCredentials, error) {
	out := DecodedCredentials{OtherAccess: []models.OtherAccess{}}
	hostingSeen := false

	for _, row := range rows {
		key := models.ParsePlatformKey(row.Platform)
		switch key.Kind {
		case models.PlatformMain:
			out.Main = models.Credential{
				Username: row.Username,
				Password: row.Password,
				Notes:    row.Notes,
			}
		case models.PlatformHosting:
			if hostingSeen {
				return DecodedCredentials{}, fmt.Errorf("project %s has multiple hosting credential rows", row.ProjectID)
			}
			hostingSeen = true
			out.Hosting = models.Hosting{
				Provider: key.Provider,
				Credential: models.Credential{
					Username: row.Username,
					Password: row.Password,
				},
				Notes: row.Notes,
			}
		case models.PlatformAccess:
			out.OtherAccess = append(out.OtherAccess, models.OtherAccess{
				ID:   row.ID,
				Type: models.AccessType(key.AccessType),
				Name: key.AccessName,
				Credential: models.Credential{
					Username: row.Username,
					Password: row.Password,
				},
				Notes: row.Notes,
			})
		}
	}

	return out, nil
}
