package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateRepository handles database operations for per-document
// customizations (initials clauses and addendum text).
type TemplateRepository struct {
	db *pgxpool.Pool
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Upsert creates or replaces the customization for a (profile, document type)
func (r *TemplateRepository) Upsert(ctx context.Context, tmpl *models.Template) error {
	query := `
		INSERT INTO templates (profile_id, document_type, clauses, addendum)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, document_type)
		DO UPDATE SET clauses = EXCLUDED.clauses, addendum = EXCLUDED.addendum, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		tmpl.ProfileID,
		tmpl.DocumentType,
		tmpl.Clauses,
		tmpl.Addendum,
	).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.UpdatedAt)
}

// GetByProfileAndType retrieves one document's customization
func (r *TemplateRepository) GetByProfileAndType(ctx context.Context, profileID uuid.UUID, docType models.DocumentType) (*models.Template, error) {
	tmpl := &models.Template{}
	query := `
		SELECT id, profile_id, document_type, clauses, addendum, created_at, updated_at
		FROM templates
		WHERE profile_id = $1 AND document_type = $2`

	err := r.db.QueryRow(ctx, query, profileID, docType).Scan(
		&tmpl.ID,
		&tmpl.ProfileID,
		&tmpl.DocumentType,
		&tmpl.Clauses,
		&tmpl.Addendum,
		&tmpl.CreatedAt,
		&tmpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return tmpl, nil
}

// ListByProfile lists all customizations for a profile
func (r *TemplateRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]models.Template, error) {
	query := `
		SELECT id, profile_id, document_type, clauses, addendum, created_at, updated_at
		FROM templates
		WHERE profile_id = $1`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var tmpl models.Template
		if err := rows.Scan(
			&tmpl.ID,
			&tmpl.ProfileID,
			&tmpl.DocumentType,
			&tmpl.Clauses,
			&tmpl.Addendum,
			&tmpl.CreatedAt,
			&tmpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

// Delete removes one document's customization
func (r *TemplateRepository) Delete(ctx context.Context, profileID uuid.UUID, docType models.DocumentType) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM templates WHERE profile_id = $1 AND document_type = $2`,
		profileID, docType)
	return err
}
