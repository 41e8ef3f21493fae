package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"hireedocs-backend/models"

	"github.com/google/uuid"
)

var csvHeader = []string{"kind", "name", "service_type", "min_sqft", "max_sqft", "rate"}

// ExportPricingCSV writes a company's full pricing configuration and gear
// catalog as CSV. Flat services, tiered rates, and gear share one file,
// distinguished by the kind column; gear prices ride in the rate column.
func (s *PricingService) ExportPricingCSV(ctx context.Context, companyID uuid.UUID, w io.Writer) error {
	if s.pricingRepo == nil || s.gearRepo == nil {
		return errors.New("pricing and gear repositories not set")
	}

	flat, err := s.pricingRepo.ListFlatServices(ctx, companyID)
	if err != nil {
		return err
	}
	tiers, err := s.pricingRepo.ListTiers(ctx, companyID)
	if err != nil {
		return err
	}
	rates, err := s.pricingRepo.ListTieredRates(ctx, companyID)
	if err != nil {
		return err
	}
	gear, err := s.gearRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}

	tierByID := make(map[uuid.UUID]models.Tier, len(tiers))
	for _, t := range tiers {
		tierByID[t.ID] = t
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, svc := range flat {
		if err := cw.Write([]string{"flat", svc.Name, "", "", "", svc.Rate}); err != nil {
			return err
		}
	}
	for _, rate := range rates {
		tier, ok := tierByID[rate.TierID]
		if !ok {
			continue
		}
		row := []string{
			"tiered", "",
			string(rate.ServiceType),
			strconv.Itoa(tier.MinSqft),
			strconv.Itoa(tier.MaxSqft),
			rate.Rate,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	for _, item := range gear {
		price := ""
		if item.EstimatedPriceCAD != nil {
			price = strconv.FormatFloat(*item.EstimatedPriceCAD, 'f', 2, 64)
		}
		if err := cw.Write([]string{"gear", item.Name, "", "", "", price}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportPricingCSV replaces a company's pricing configuration and gear
// catalog from a CSV in the export format. The whole file is validated
// before anything is written.
func (s *PricingService) ImportPricingCSV(ctx context.Context, companyID uuid.UUID, r io.Reader) error {
	if s.pricingRepo == nil || s.gearRepo == nil {
		return errors.New("pricing and gear repositories not set")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("malformed CSV: %w", err)
	}
	if len(records) == 0 {
		return errors.New("empty CSV")
	}

	type tierKey struct{ min, max int }
	type tieredRow struct {
		key         tierKey
		serviceType models.ServiceType
		rate        string
	}

	var flatRows []models.FlatService
	var tieredRows []tieredRow
	var gearRows []models.GearItem
	tierSet := make(map[tierKey]bool)

	for i, rec := range records[1:] {
		line := i + 2
		switch rec[0] {
		case "flat":
			if rec[1] == "" {
				return fmt.Errorf("line %d: flat service needs a name", line)
			}
			flatRows = append(flatRows, models.FlatService{CompanyID: companyID, Name: rec[1], Rate: rec[5]})
		case "tiered":
			serviceType := models.ServiceType(rec[2])
			if !models.ValidServiceType(serviceType) {
				return fmt.Errorf("line %d: %w: %q", line, ErrInvalidServiceType, rec[2])
			}
			min, err := strconv.Atoi(rec[3])
			if err != nil {
				return fmt.Errorf("line %d: bad min_sqft: %w", line, err)
			}
			max, err := strconv.Atoi(rec[4])
			if err != nil {
				return fmt.Errorf("line %d: bad max_sqft: %w", line, err)
			}
			key := tierKey{min, max}
			tierSet[key] = true
			tieredRows = append(tieredRows, tieredRow{key: key, serviceType: serviceType, rate: rec[5]})
		case "gear":
			if rec[1] == "" {
				return fmt.Errorf("line %d: gear item needs a name", line)
			}
			item := models.GearItem{CompanyID: companyID, Name: rec[1]}
			if rec[5] != "" {
				price, err := strconv.ParseFloat(rec[5], 64)
				if err != nil {
					return fmt.Errorf("line %d: bad gear price: %w", line, err)
				}
				src := models.PriceSourceManual
				item.EstimatedPriceCAD = &price
				item.PriceSource = &src
			}
			gearRows = append(gearRows, item)
		default:
			return fmt.Errorf("line %d: unknown kind %q", line, rec[0])
		}
	}

	tiers := make([]models.Tier, 0, len(tierSet))
	for key := range tierSet {
		tiers = append(tiers, models.Tier{CompanyID: companyID, MinSqft: key.min, MaxSqft: key.max})
	}
	if !TiersAreValid(tiers) {
		return ErrInvalidTiers
	}

	replaced, err := s.ReplaceTiers(ctx, companyID, tiers)
	if err != nil {
		return err
	}
	tierIDs := make(map[tierKey]uuid.UUID, len(replaced))
	for _, t := range replaced {
		tierIDs[tierKey{t.MinSqft, t.MaxSqft}] = t.ID
	}

	for _, row := range tieredRows {
		rate := &models.TieredRate{
			CompanyID:   companyID,
			TierID:      tierIDs[row.key],
			ServiceType: row.serviceType,
			Rate:        row.rate,
		}
		if err := s.pricingRepo.UpsertTieredRate(ctx, rate); err != nil {
			return err
		}
	}

	existing, err := s.pricingRepo.ListFlatServices(ctx, companyID)
	if err != nil {
		return err
	}
	for _, svc := range existing {
		if err := s.pricingRepo.DeleteFlatService(ctx, svc.ID); err != nil {
			return err
		}
	}
	for i := range flatRows {
		if err := s.pricingRepo.CreateFlatService(ctx, &flatRows[i]); err != nil {
			return err
		}
	}

	existingGear, err := s.gearRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	for _, item := range existingGear {
		if err := s.gearRepo.Delete(ctx, item.ID); err != nil {
			return err
		}
	}
	for i := range gearRows {
		if err := s.gearRepo.Create(ctx, &gearRows[i]); err != nil {
			return err
		}
	}

	return nil
}
