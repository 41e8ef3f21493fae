package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OverrideRepository handles the per-hiree exception rows layered over
// company pricing and gear: flat-rate overrides, tiered-rate overrides,
// catalog-gear requirement overrides, and hiree-scoped custom gear.
type OverrideRepository struct {
	db *pgxpool.Pool
}

// NewOverrideRepository creates a new override repository
func NewOverrideRepository(db *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// UpsertFlatOverride sets a hiree's flat-service override row
func (r *OverrideRepository) UpsertFlatOverride(ctx context.Context, o *models.HireeFlatService) error {
	query := `
		INSERT INTO hiree_flat_services (profile_id, flat_service_id, custom_rate, is_enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, flat_service_id)
		DO UPDATE SET custom_rate = EXCLUDED.custom_rate, is_enabled = EXCLUDED.is_enabled, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		o.ProfileID,
		o.FlatServiceID,
		o.CustomRate,
		o.IsEnabled,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// ListFlatOverrides lists a hiree's flat-service override rows
func (r *OverrideRepository) ListFlatOverrides(ctx context.Context, profileID uuid.UUID) ([]models.HireeFlatService, error) {
	query := `
		SELECT id, profile_id, flat_service_id, custom_rate, is_enabled, created_at, updated_at
		FROM hiree_flat_services
		WHERE profile_id = $1`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []models.HireeFlatService
	for rows.Next() {
		var o models.HireeFlatService
		if err := rows.Scan(&o.ID, &o.ProfileID, &o.FlatServiceID, &o.CustomRate, &o.IsEnabled, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

// UpsertTieredOverride sets a hiree's tiered-rate override row
func (r *OverrideRepository) UpsertTieredOverride(ctx context.Context, o *models.HireeTieredRate) error {
	query := `
		INSERT INTO hiree_tiered_rates (profile_id, tiered_rate_id, custom_rate, is_enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, tiered_rate_id)
		DO UPDATE SET custom_rate = EXCLUDED.custom_rate, is_enabled = EXCLUDED.is_enabled, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		o.ProfileID,
		o.TieredRateID,
		o.CustomRate,
		o.IsEnabled,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// ListTieredOverrides lists a hiree's tiered-rate override rows
func (r *OverrideRepository) ListTieredOverrides(ctx context.Context, profileID uuid.UUID) ([]models.HireeTieredRate, error) {
	query := `
		SELECT id, profile_id, tiered_rate_id, custom_rate, is_enabled, created_at, updated_at
		FROM hiree_tiered_rates
		WHERE profile_id = $1`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []models.HireeTieredRate
	for rows.Next() {
		var o models.HireeTieredRate
		if err := rows.Scan(&o.ID, &o.ProfileID, &o.TieredRateID, &o.CustomRate, &o.IsEnabled, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

// UpsertGearOverride sets a hiree's requirement override for a catalog item
func (r *OverrideRepository) UpsertGearOverride(ctx context.Context, o *models.HireeGearItem) error {
	query := `
		INSERT INTO hiree_gear_items (profile_id, gear_item_id, is_required, custom_notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, gear_item_id)
		DO UPDATE SET is_required = EXCLUDED.is_required, custom_notes = EXCLUDED.custom_notes, updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		o.ProfileID,
		o.GearItemID,
		o.IsRequired,
		o.CustomNotes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// ListGearOverrides lists a hiree's catalog-gear override rows
func (r *OverrideRepository) ListGearOverrides(ctx context.Context, profileID uuid.UUID) ([]models.HireeGearItem, error) {
	query := `
		SELECT id, profile_id, gear_item_id, is_required, custom_notes, created_at, updated_at
		FROM hiree_gear_items
		WHERE profile_id = $1`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []models.HireeGearItem
	for rows.Next() {
		var o models.HireeGearItem
		if err := rows.Scan(&o.ID, &o.ProfileID, &o.GearItemID, &o.IsRequired, &o.CustomNotes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

// CreateCustomGear creates a hiree-scoped custom gear item
func (r *OverrideRepository) CreateCustomGear(ctx context.Context, item *models.HireeCustomGearItem) error {
	query := `
		INSERT INTO hiree_custom_gear_items (
			profile_id, name, is_required, custom_notes, estimated_price_cad, price_source
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		item.ProfileID,
		item.Name,
		item.IsRequired,
		item.CustomNotes,
		item.EstimatedPriceCAD,
		item.PriceSource,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// ListCustomGear lists a hiree's custom gear in creation order
func (r *OverrideRepository) ListCustomGear(ctx context.Context, profileID uuid.UUID) ([]models.HireeCustomGearItem, error) {
	query := `
		SELECT id, profile_id, name, is_required, custom_notes, estimated_price_cad, price_source, created_at, updated_at
		FROM hiree_custom_gear_items
		WHERE profile_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.HireeCustomGearItem
	for rows.Next() {
		var item models.HireeCustomGearItem
		if err := rows.Scan(
			&item.ID,
			&item.ProfileID,
			&item.Name,
			&item.IsRequired,
			&item.CustomNotes,
			&item.EstimatedPriceCAD,
			&item.PriceSource,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateCustomGear updates a custom gear item
func (r *OverrideRepository) UpdateCustomGear(ctx context.Context, item *models.HireeCustomGearItem) error {
	query := `
		UPDATE hiree_custom_gear_items SET
			name = $2,
			is_required = $3,
			custom_notes = $4,
			estimated_price_cad = $5,
			price_source = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		item.ID,
		item.Name,
		item.IsRequired,
		item.CustomNotes,
		item.EstimatedPriceCAD,
		item.PriceSource,
	).Scan(&item.UpdatedAt)
}

// UpdateCustomGearPrice sets a custom item's estimated price with provenance
func (r *OverrideRepository) UpdateCustomGearPrice(ctx context.Context, id uuid.UUID, price *float64, source models.PriceSource) error {
	_, err := r.db.Exec(ctx,
		`UPDATE hiree_custom_gear_items SET estimated_price_cad = $2, price_source = $3, updated_at = NOW() WHERE id = $1`,
		id, price, source)
	return err
}

// DeleteCustomGear deletes a custom gear item
func (r *OverrideRepository) DeleteCustomGear(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM hiree_custom_gear_items WHERE id = $1`, id)
	return err
}
