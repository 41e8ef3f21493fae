package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OfferRepository handles database operations for offers. Each profile has
// at most one offer row.
type OfferRepository struct {
	db *pgxpool.Pool
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `
	id, profile_id, position, start_date, end_date, work_schedule,
	probation_months, manager_name, manager_email, manager_phone, manager_ext,
	contact_ext, return_by, ceo_name, compensation, responsibilities,
	requirements, terms, flat_services, tiered_services, status,
	created_at, updated_at`

func scanOffer(row interface{ Scan(...interface{}) error }) (*models.OfferDetails, error) {
	offer := &models.OfferDetails{}
	err := row.Scan(
		&offer.ID,
		&offer.ProfileID,
		&offer.Position,
		&offer.StartDate,
		&offer.EndDate,
		&offer.WorkSchedule,
		&offer.ProbationMonths,
		&offer.ManagerName,
		&offer.ManagerEmail,
		&offer.ManagerPhone,
		&offer.ManagerExt,
		&offer.ContactExt,
		&offer.ReturnBy,
		&offer.CEOName,
		&offer.Compensation,
		&offer.Responsibilities,
		&offer.Requirements,
		&offer.Terms,
		&offer.FlatServices,
		&offer.TieredServices,
		&offer.Status,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return offer, nil
}

// Upsert creates or replaces the offer for a profile
func (r *OfferRepository) Upsert(ctx context.Context, offer *models.OfferDetails) error {
	query := `
		INSERT INTO offers (
			profile_id, position, start_date, end_date, work_schedule,
			probation_months, manager_name, manager_email, manager_phone, manager_ext,
			contact_ext, return_by, ceo_name, compensation, responsibilities,
			requirements, terms, flat_services, tiered_services, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		ON CONFLICT (profile_id) DO UPDATE SET
			position = EXCLUDED.position,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			work_schedule = EXCLUDED.work_schedule,
			probation_months = EXCLUDED.probation_months,
			manager_name = EXCLUDED.manager_name,
			manager_email = EXCLUDED.manager_email,
			manager_phone = EXCLUDED.manager_phone,
			manager_ext = EXCLUDED.manager_ext,
			contact_ext = EXCLUDED.contact_ext,
			return_by = EXCLUDED.return_by,
			ceo_name = EXCLUDED.ceo_name,
			compensation = EXCLUDED.compensation,
			responsibilities = EXCLUDED.responsibilities,
			requirements = EXCLUDED.requirements,
			terms = EXCLUDED.terms,
			flat_services = EXCLUDED.flat_services,
			tiered_services = EXCLUDED.tiered_services,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		offer.ProfileID,
		offer.Position,
		offer.StartDate,
		offer.EndDate,
		offer.WorkSchedule,
		offer.ProbationMonths,
		offer.ManagerName,
		offer.ManagerEmail,
		offer.ManagerPhone,
		offer.ManagerExt,
		offer.ContactExt,
		offer.ReturnBy,
		offer.CEOName,
		offer.Compensation,
		offer.Responsibilities,
		offer.Requirements,
		offer.Terms,
		offer.FlatServices,
		offer.TieredServices,
		offer.Status,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
}

// GetByProfile retrieves a profile's offer
func (r *OfferRepository) GetByProfile(ctx context.Context, profileID uuid.UUID) (*models.OfferDetails, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE profile_id = $1`
	return scanOffer(r.db.QueryRow(ctx, query, profileID))
}

// UpdateStatus moves an offer through its lifecycle
func (r *OfferRepository) UpdateStatus(ctx context.Context, profileID uuid.UUID, status models.OfferStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE offers SET status = $2, updated_at = NOW() WHERE profile_id = $1`,
		profileID, status)
	return err
}

// Delete deletes a profile's offer
func (r *OfferRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM offers WHERE profile_id = $1`, profileID)
	return err
}
