package repository

import (
	"context"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EstimationLogRepository handles the audit trail of gear price estimation runs
type EstimationLogRepository struct {
	db *pgxpool.Pool
}

// NewEstimationLogRepository creates a new estimation log repository
func NewEstimationLogRepository(db *pgxpool.Pool) *EstimationLogRepository {
	return &EstimationLogRepository{db: db}
}

// Create records one estimation run
func (r *EstimationLogRepository) Create(ctx context.Context, log *models.GearEstimationLog) error {
	query := `
		INSERT INTO gear_estimation_logs (
			profile_id, company_id, estimation_type, items_estimated,
			total_estimated_cost_cad, tokens_used
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		log.ProfileID,
		log.CompanyID,
		log.EstimationType,
		log.ItemsEstimated,
		log.TotalEstimatedCostCAD,
		log.TokensUsed,
	).Scan(&log.ID, &log.CreatedAt)
}

// ListByCompany lists a company's estimation runs, newest first
func (r *EstimationLogRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.GearEstimationLog, error) {
	query := `
		SELECT id, profile_id, company_id, estimation_type, items_estimated,
			total_estimated_cost_cad, tokens_used, created_at
		FROM gear_estimation_logs
		WHERE company_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.GearEstimationLog
	for rows.Next() {
		var l models.GearEstimationLog
		if err := rows.Scan(
			&l.ID,
			&l.ProfileID,
			&l.CompanyID,
			&l.EstimationType,
			&l.ItemsEstimated,
			&l.TotalEstimatedCostCAD,
			&l.TokensUsed,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
