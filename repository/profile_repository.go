package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for hiree profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (
			company_id, owner_id, name, hiree_name, hiree_dob,
			hiree_address, hiree_email, hiree_phone, hiree_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		profile.CompanyID,
		profile.OwnerID,
		profile.Name,
		profile.HireeName,
		profile.HireeDob,
		profile.HireeAddress,
		profile.HireeEmail,
		profile.HireePhone,
		profile.HireeDate,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, company_id, owner_id, name, hiree_name, hiree_dob,
			hiree_address, hiree_email, hiree_phone, hiree_date,
			created_at, updated_at
		FROM profiles
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.CompanyID,
		&profile.OwnerID,
		&profile.Name,
		&profile.HireeName,
		&profile.HireeDob,
		&profile.HireeAddress,
		&profile.HireeEmail,
		&profile.HireePhone,
		&profile.HireeDate,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ListByCompany lists a company's profiles, newest first
func (r *ProfileRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*models.Profile, error) {
	query := `
		SELECT id, company_id, owner_id, name, hiree_name, hiree_dob,
			hiree_address, hiree_email, hiree_phone, hiree_date,
			created_at, updated_at
		FROM profiles
		WHERE company_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile := &models.Profile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.CompanyID,
			&profile.OwnerID,
			&profile.Name,
			&profile.HireeName,
			&profile.HireeDob,
			&profile.HireeAddress,
			&profile.HireeEmail,
			&profile.HireePhone,
			&profile.HireeDate,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// Update updates a profile
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2,
			hiree_name = $3,
			hiree_dob = $4,
			hiree_address = $5,
			hiree_email = $6,
			hiree_phone = $7,
			hiree_date = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		profile.ID,
		profile.Name,
		profile.HireeName,
		profile.HireeDob,
		profile.HireeAddress,
		profile.HireeEmail,
		profile.HireePhone,
		profile.HireeDate,
	).Scan(&profile.UpdatedAt)
}

// Delete deletes a profile and its per-hiree records
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	return err
}
