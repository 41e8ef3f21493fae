package repository

import (
	"context"
	"time"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SignatureRepository handles database operations for in-app signatures,
// public signing links, reset audit rows, and hiree access tokens.
type SignatureRepository struct {
	db *pgxpool.Pool
}

// NewSignatureRepository creates a new signature repository
func NewSignatureRepository(db *pgxpool.Pool) *SignatureRepository {
	return &SignatureRepository{db: db}
}

// UpsertSignature stores a profile's hiree or company signature image
func (r *SignatureRepository) UpsertSignature(ctx context.Context, sig *models.Signature) error {
	query := `
		INSERT INTO signatures (profile_id, company_id, signature_type, signature_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, signature_type)
		DO UPDATE SET signature_data = EXCLUDED.signature_data, company_id = EXCLUDED.company_id, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		sig.ProfileID,
		sig.CompanyID,
		sig.SignatureType,
		sig.SignatureData,
	).Scan(&sig.ID, &sig.CreatedAt, &sig.UpdatedAt)
}

// GetSignature retrieves one of a profile's signature slots
func (r *SignatureRepository) GetSignature(ctx context.Context, profileID uuid.UUID, sigType models.SignatureType) (*models.Signature, error) {
	sig := &models.Signature{}
	query := `
		SELECT id, profile_id, company_id, signature_type, signature_data, created_at, updated_at
		FROM signatures
		WHERE profile_id = $1 AND signature_type = $2`

	err := r.db.QueryRow(ctx, query, profileID, sigType).Scan(
		&sig.ID,
		&sig.ProfileID,
		&sig.CompanyID,
		&sig.SignatureType,
		&sig.SignatureData,
		&sig.CreatedAt,
		&sig.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sig, nil
}

// DeleteSignature clears one of a profile's signature slots
func (r *SignatureRepository) DeleteSignature(ctx context.Context, profileID uuid.UUID, sigType models.SignatureType) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM signatures WHERE profile_id = $1 AND signature_type = $2`,
		profileID, sigType)
	return err
}

const signatureLinkColumns = `
	id, profile_id, company_id, document_type, document_data, signature_token,
	is_signed, signed_at, signed_by, tenant_signature_data, hiree_signature_data,
	tenant_initial_data, hiree_initial_data, created_at, updated_at`

func scanSignatureLink(row interface{ Scan(...interface{}) error }) (*models.SignatureLink, error) {
	link := &models.SignatureLink{}
	err := row.Scan(
		&link.ID,
		&link.ProfileID,
		&link.CompanyID,
		&link.DocumentType,
		&link.DocumentData,
		&link.SignatureToken,
		&link.IsSigned,
		&link.SignedAt,
		&link.SignedBy,
		&link.TenantSignatureData,
		&link.HireeSignatureData,
		&link.TenantInitialData,
		&link.HireeInitialData,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return link, nil
}

// CreateLink creates a signing link with a frozen document snapshot
func (r *SignatureRepository) CreateLink(ctx context.Context, link *models.SignatureLink) error {
	query := `
		INSERT INTO signature_links (profile_id, company_id, document_type, document_data, signature_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		link.ProfileID,
		link.CompanyID,
		link.DocumentType,
		link.DocumentData,
		link.SignatureToken,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
}

// GetLinkByToken retrieves a signing link by its public token
func (r *SignatureRepository) GetLinkByToken(ctx context.Context, token string) (*models.SignatureLink, error) {
	query := `SELECT ` + signatureLinkColumns + ` FROM signature_links WHERE signature_token = $1`
	return scanSignatureLink(r.db.QueryRow(ctx, query, token))
}

// GetLinkByID retrieves a signing link by ID
func (r *SignatureRepository) GetLinkByID(ctx context.Context, id uuid.UUID) (*models.SignatureLink, error) {
	query := `SELECT ` + signatureLinkColumns + ` FROM signature_links WHERE id = $1`
	return scanSignatureLink(r.db.QueryRow(ctx, query, id))
}

// ListLinksByProfile lists a profile's signing links, newest first
func (r *SignatureRepository) ListLinksByProfile(ctx context.Context, profileID uuid.UUID) ([]*models.SignatureLink, error) {
	query := `SELECT ` + signatureLinkColumns + ` FROM signature_links WHERE profile_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.SignatureLink
	for rows.Next() {
		link, err := scanSignatureLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// MarkSigned records the single unsigned -> signed transition. The WHERE
// clause guards against double signing; zero rows updated means the link was
// already signed.
func (r *SignatureRepository) MarkSigned(ctx context.Context, id uuid.UUID, role models.SignerRole, signature, initials *string) (bool, error) {
	query := `
		UPDATE signature_links SET
			is_signed = TRUE,
			signed_at = NOW(),
			signed_by = $2,
			tenant_signature_data = CASE WHEN $2 = 'tenant' THEN $3 ELSE tenant_signature_data END,
			hiree_signature_data = CASE WHEN $2 = 'hiree' THEN $3 ELSE hiree_signature_data END,
			tenant_initial_data = CASE WHEN $2 = 'tenant' THEN $4 ELSE tenant_initial_data END,
			hiree_initial_data = CASE WHEN $2 = 'hiree' THEN $4 ELSE hiree_initial_data END,
			updated_at = NOW()
		WHERE id = $1 AND is_signed = FALSE`

	tag, err := r.db.Exec(ctx, query, id, role, signature, initials)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ResetLink clears a link's signed state and writes the audit row in one
// transaction.
func (r *SignatureRepository) ResetLink(ctx context.Context, linkID, resetBy uuid.UUID, reason *string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE signature_links SET
			is_signed = FALSE,
			signed_at = NULL,
			signed_by = NULL,
			tenant_signature_data = NULL,
			hiree_signature_data = NULL,
			tenant_initial_data = NULL,
			hiree_initial_data = NULL,
			updated_at = NOW()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, linkID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO signature_reset_logs (signature_link_id, reset_by, reset_reason) VALUES ($1, $2, $3)`,
		linkID, resetBy, reason)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListResetLogs lists a link's reset history, newest first
func (r *SignatureRepository) ListResetLogs(ctx context.Context, linkID uuid.UUID) ([]models.SignatureResetLog, error) {
	query := `
		SELECT id, signature_link_id, reset_by, reset_reason, reset_at
		FROM signature_reset_logs
		WHERE signature_link_id = $1
		ORDER BY reset_at DESC`

	rows, err := r.db.Query(ctx, query, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.SignatureResetLog
	for rows.Next() {
		var l models.SignatureResetLog
		if err := rows.Scan(&l.ID, &l.SignatureLinkID, &l.ResetBy, &l.ResetReason, &l.ResetAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// DeleteLink deletes a signing link
func (r *SignatureRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM signature_links WHERE id = $1`, id)
	return err
}

// CreateHireeAccess creates an expiring access token for a profile
func (r *SignatureRepository) CreateHireeAccess(ctx context.Context, access *models.HireeAccess) error {
	query := `
		INSERT INTO hiree_access (profile_id, access_token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		access.ProfileID,
		access.AccessToken,
		access.ExpiresAt,
	).Scan(&access.ID, &access.CreatedAt)
}

// GetHireeAccessByToken retrieves an access grant by token
func (r *SignatureRepository) GetHireeAccessByToken(ctx context.Context, token string) (*models.HireeAccess, error) {
	access := &models.HireeAccess{}
	query := `
		SELECT id, profile_id, access_token, expires_at, is_used, created_at
		FROM hiree_access
		WHERE access_token = $1`

	err := r.db.QueryRow(ctx, query, token).Scan(
		&access.ID,
		&access.ProfileID,
		&access.AccessToken,
		&access.ExpiresAt,
		&access.IsUsed,
		&access.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return access, nil
}

// MarkHireeAccessUsed consumes an access grant. Returns false when the grant
// was already used or has expired.
func (r *SignatureRepository) MarkHireeAccessUsed(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE hiree_access SET is_used = TRUE WHERE id = $1 AND is_used = FALSE AND expires_at > $2`,
		id, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
