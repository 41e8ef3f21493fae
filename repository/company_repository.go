package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (owner_id, name, jurisdiction, logo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		company.OwnerID,
		company.Name,
		company.Jurisdiction,
		company.LogoURL,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, owner_id, name, jurisdiction, logo_url, created_at, updated_at
		FROM companies
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.OwnerID,
		&company.Name,
		&company.Jurisdiction,
		&company.LogoURL,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return company, nil
}

// ListByOwner lists companies owned by a user, newest first
func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Company, error) {
	query := `
		SELECT id, owner_id, name, jurisdiction, logo_url, created_at, updated_at
		FROM companies
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		if err := rows.Scan(
			&company.ID,
			&company.OwnerID,
			&company.Name,
			&company.Jurisdiction,
			&company.LogoURL,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// Update updates a company's profile fields
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies SET
			name = $2,
			jurisdiction = $3,
			logo_url = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		company.ID,
		company.Name,
		company.Jurisdiction,
		company.LogoURL,
	).Scan(&company.UpdatedAt)
}

// Delete deletes a company and, via cascading constraints, everything under it
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
