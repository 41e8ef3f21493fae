package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PricingRepository handles database operations for company pricing:
// flat services, square-footage tiers, and per-tier service rates.
type PricingRepository struct {
	db *pgxpool.Pool
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(db *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{db: db}
}

// CreateFlatService creates a flat service
func (r *PricingRepository) CreateFlatService(ctx context.Context, svc *models.FlatService) error {
	query := `
		INSERT INTO flat_services (company_id, name, rate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, svc.CompanyID, svc.Name, svc.Rate).
		Scan(&svc.ID, &svc.CreatedAt)
}

// ListFlatServices lists a company's flat services in creation order
func (r *PricingRepository) ListFlatServices(ctx context.Context, companyID uuid.UUID) ([]models.FlatService, error) {
	query := `
		SELECT id, company_id, name, rate, created_at
		FROM flat_services
		WHERE company_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.FlatService
	for rows.Next() {
		var svc models.FlatService
		if err := rows.Scan(&svc.ID, &svc.CompanyID, &svc.Name, &svc.Rate, &svc.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, rows.Err()
}

// UpdateFlatService updates a flat service's name and rate
func (r *PricingRepository) UpdateFlatService(ctx context.Context, svc *models.FlatService) error {
	_, err := r.db.Exec(ctx,
		`UPDATE flat_services SET name = $2, rate = $3 WHERE id = $1`,
		svc.ID, svc.Name, svc.Rate)
	return err
}

// DeleteFlatService deletes a flat service and its override rows
func (r *PricingRepository) DeleteFlatService(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM flat_services WHERE id = $1`, id)
	return err
}

// CreateTier creates a square-footage tier
func (r *PricingRepository) CreateTier(ctx context.Context, tier *models.Tier) error {
	query := `
		INSERT INTO tiers (company_id, min_sqft, max_sqft)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, tier.CompanyID, tier.MinSqft, tier.MaxSqft).
		Scan(&tier.ID, &tier.CreatedAt)
}

// ListTiers lists a company's tiers ordered by min_sqft
func (r *PricingRepository) ListTiers(ctx context.Context, companyID uuid.UUID) ([]models.Tier, error) {
	query := `
		SELECT id, company_id, min_sqft, max_sqft, created_at
		FROM tiers
		WHERE company_id = $1
		ORDER BY min_sqft`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []models.Tier
	for rows.Next() {
		var tier models.Tier
		if err := rows.Scan(&tier.ID, &tier.CompanyID, &tier.MinSqft, &tier.MaxSqft, &tier.CreatedAt); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, rows.Err()
}

// ReplaceTiers swaps a company's full tier set in one transaction. Tier edits
// arrive as the whole validated set, not row-by-row.
func (r *PricingRepository) ReplaceTiers(ctx context.Context, companyID uuid.UUID, tiers []models.Tier) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tiers WHERE company_id = $1`, companyID); err != nil {
		return err
	}

	for i := range tiers {
		tiers[i].CompanyID = companyID
		err := tx.QueryRow(ctx,
			`INSERT INTO tiers (company_id, min_sqft, max_sqft) VALUES ($1, $2, $3) RETURNING id, created_at`,
			companyID, tiers[i].MinSqft, tiers[i].MaxSqft,
		).Scan(&tiers[i].ID, &tiers[i].CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpsertTieredRate sets the rate for a (tier, service type) pair
func (r *PricingRepository) UpsertTieredRate(ctx context.Context, rate *models.TieredRate) error {
	query := `
		INSERT INTO tiered_rates (company_id, tier_id, service_type, rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tier_id, service_type)
		DO UPDATE SET rate = EXCLUDED.rate
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		rate.CompanyID,
		rate.TierID,
		rate.ServiceType,
		rate.Rate,
	).Scan(&rate.ID, &rate.CreatedAt)
}

// ListTieredRates lists all tiered rates for a company
func (r *PricingRepository) ListTieredRates(ctx context.Context, companyID uuid.UUID) ([]models.TieredRate, error) {
	query := `
		SELECT id, company_id, tier_id, service_type, rate, created_at
		FROM tiered_rates
		WHERE company_id = $1`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []models.TieredRate
	for rows.Next() {
		var rate models.TieredRate
		if err := rows.Scan(&rate.ID, &rate.CompanyID, &rate.TierID, &rate.ServiceType, &rate.Rate, &rate.CreatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}
