package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GearRepository handles database operations for the company gear catalog
type GearRepository struct {
	db *pgxpool.Pool
}

// NewGearRepository creates a new gear repository
func NewGearRepository(db *pgxpool.Pool) *GearRepository {
	return &GearRepository{db: db}
}

// Create creates a catalog gear item
func (r *GearRepository) Create(ctx context.Context, item *models.GearItem) error {
	query := `
		INSERT INTO gear_items (company_id, name, estimated_price_cad, price_source, last_estimated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		item.CompanyID,
		item.Name,
		item.EstimatedPriceCAD,
		item.PriceSource,
		item.LastEstimatedAt,
	).Scan(&item.ID, &item.CreatedAt)
}

// GetByID retrieves a catalog gear item by ID
func (r *GearRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GearItem, error) {
	item := &models.GearItem{}
	query := `
		SELECT id, company_id, name, estimated_price_cad, price_source, last_estimated_at, created_at
		FROM gear_items
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.CompanyID,
		&item.Name,
		&item.EstimatedPriceCAD,
		&item.PriceSource,
		&item.LastEstimatedAt,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListByCompany lists a company's catalog gear in creation order
func (r *GearRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.GearItem, error) {
	query := `
		SELECT id, company_id, name, estimated_price_cad, price_source, last_estimated_at, created_at
		FROM gear_items
		WHERE company_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.GearItem
	for rows.Next() {
		var item models.GearItem
		if err := rows.Scan(
			&item.ID,
			&item.CompanyID,
			&item.Name,
			&item.EstimatedPriceCAD,
			&item.PriceSource,
			&item.LastEstimatedAt,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateName renames a catalog gear item
func (r *GearRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	_, err := r.db.Exec(ctx, `UPDATE gear_items SET name = $2 WHERE id = $1`, id, name)
	return err
}

// UpdatePrice sets a catalog item's estimated price with its provenance.
// Estimator writes pass last_estimated_at; manual writes leave it unchanged.
func (r *GearRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price *float64, source models.PriceSource) error {
	query := `
		UPDATE gear_items SET
			estimated_price_cad = $2,
			price_source = $3,
			last_estimated_at = CASE WHEN $3 = 'ai_estimate' THEN NOW() ELSE last_estimated_at END
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, price, source)
	return err
}

// Delete deletes a catalog gear item and its override rows
func (r *GearRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM gear_items WHERE id = $1`, id)
	return err
}
