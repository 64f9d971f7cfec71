package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/agencydesk/backoffice/pkg/models"
)

// insertCredentialRows inserts encoded credential rows within tx.
func insertCredentialRows(ctx context.Context, tx pgx.Tx, rows []CredentialRow, now time.Time) error {
	for _, row := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO project_credentials (id, project_id, platform, username, password, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), row.ProjectID, row.Platform, row.Username, row.Password, row.Notes, now, now,
		)
		if err != nil {
			return mapStoreError(err, "project_credentials")
		}
	}
	return nil
}

// insertPaymentRows inserts encoded payment rows within tx.
func insertPaymentRows(ctx context.Context, tx pgx.Tx, rows []PaymentRow, now time.Time) error {
	for _, row := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO payments (id, project_id, amount, payment_date, payment_method, description, currency, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), row.ProjectID, row.Amount, row.PaymentDate, row.PaymentMethod, row.Description, row.Currency, now, now,
		)
		if err != nil {
			return mapStoreError(err, "payments")
		}
	}
	return nil
}

// upsertPlatformRow is the upsert-by-convention used for the "main" row: look
// up the existing row by (project_id, platform), update in place if found,
// insert otherwise. Not an atomic upsert primitive - matches the store's
// historical access pattern.
func upsertPlatformRow(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, platform string, cred models.Credential, now time.Time) error {
	var existingID uuid.UUID
	err := tx.QueryRow(ctx, `
		SELECT id FROM project_credentials WHERE project_id = $1 AND platform = $2`,
		projectID, platform).Scan(&existingID)

	switch err {
	case nil:
		_, err = tx.Exec(ctx, `
			UPDATE project_credentials SET username = $1, password = $2, notes = $3, updated_at = $4
			WHERE id = $5`,
			cred.Username, cred.Password, cred.Notes, now, existingID)
		if err != nil {
			return mapStoreError(err, "project_credentials")
		}
		return nil
	case pgx.ErrNoRows:
		if cred.IsZero() {
			return nil
		}
		return insertCredentialRows(ctx, tx, []CredentialRow{{
			ProjectID: projectID,
			Platform:  platform,
			Username:  cred.Username,
			Password:  cred.Password,
			Notes:     cred.Notes,
		}}, now)
	default:
		return mapStoreError(err, "project_credentials")
	}
}

// upsertHostingRow updates the single hosting row in place (the platform key
// carries the provider, so it is rewritten too), inserting when absent. More
// than one existing hosting row violates the at-most-one contract.
func upsertHostingRow(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, hosting models.Hosting, now time.Time) error {
	rows, err := tx.Query(ctx, `
		SELECT id FROM project_credentials
		WHERE project_id = $1 AND platform LIKE 'hosting-%'`, projectID)
	if err != nil {
		return mapStoreError(err, "project_credentials")
	}
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan hosting row id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return mapStoreError(err, "project_credentials")
	}

	if len(ids) > 1 {
		return fmt.Errorf("project %s has multiple hosting credential rows", projectID)
	}

	if hosting.Provider == "" {
		// No provider means no hosting row; drop an existing one if present.
		if len(ids) == 1 {
			if _, err := tx.Exec(ctx, `DELETE FROM project_credentials WHERE id = $1`, ids[0]); err != nil {
				return mapStoreError(err, "project_credentials")
			}
		}
		return nil
	}

	platform := models.HostingKey(hosting.Provider).String()
	if len(ids) == 1 {
		_, err := tx.Exec(ctx, `
			UPDATE project_credentials SET platform = $1, username = $2, password = $3, notes = $4, updated_at = $5
			WHERE id = $6`,
			platform, hosting.Credential.Username, hosting.Credential.Password, hosting.Notes, now, ids[0])
		if err != nil {
			return mapStoreError(err, "project_credentials")
		}
		return nil
	}

	return insertCredentialRows(ctx, tx, []CredentialRow{{
		ProjectID: projectID,
		Platform:  platform,
		Username:  hosting.Credential.Username,
		Password:  hosting.Credential.Password,
		Notes:     hosting.Notes,
	}}, now)
}

// replaceAccessRows deletes every non-main, non-hosting credential row for the
// project and re-inserts the new set. No diffing: access row ids regenerate on
// every update, which callers absorb by re-reading after write.
func replaceAccessRows(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, access []models.OtherAccess, now time.Time) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM project_credentials
		WHERE project_id = $1 AND platform <> 'main' AND platform NOT LIKE 'hosting-%'`, projectID)
	if err != nil {
		return mapStoreError(err, "project_credentials")
	}

	rows := make([]CredentialRow, 0, len(access))
	for _, a := range access {
		rows = append(rows, CredentialRow{
			ProjectID: projectID,
			Platform:  models.AccessKey(string(a.Type), a.Name).String(),
			Username:  a.Credential.Username,
			Password:  a.Credential.Password,
			Notes:     a.Notes,
		})
	}
	return insertCredentialRows(ctx, tx, rows, now)
}
