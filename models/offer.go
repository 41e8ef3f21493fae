package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents the lifecycle state of an offer
type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusFinalized OfferStatus = "finalized"
	OfferStatusSent      OfferStatus = "sent"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusRejected  OfferStatus = "rejected"
)

// Compensation is the pay sub-record of an offer. Zero/empty fields are
// omitted from generated documents.
type Compensation struct {
	BaseSalary float64 `json:"baseSalary"`
	HourlyRate float64 `json:"hourlyRate"`
	Commission float64 `json:"commission"`
	Benefits   string  `json:"benefits"`
}

// Value implements driver.Valuer for JSONB
func (c Compensation) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *Compensation) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// SelectedService is a service the offer explicitly includes; compensation
// documents list only these, not the whole company catalog.
type SelectedService struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// SelectedServices is a JSONB-backed list of selected services
type SelectedServices []SelectedService

// Value implements driver.Valuer for JSONB
func (s SelectedServices) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *SelectedServices) Scan(value interface{}) error {
	if value == nil {
		*s = make(SelectedServices, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = make(SelectedServices, 0)
		return nil
	}
	if len(bytes) == 0 {
		*s = make(SelectedServices, 0)
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// OfferDetails is the single offer record for a profile
type OfferDetails struct {
	ID              uuid.UUID        `json:"id"`
	ProfileID       uuid.UUID        `json:"profile_id"`
	Position        string           `json:"position"`
	StartDate       *string          `json:"start_date"`
	EndDate         *string          `json:"end_date"`
	WorkSchedule    string           `json:"work_schedule"`
	ProbationMonths string           `json:"probation_months"`
	ManagerName     string           `json:"manager_name"`
	ManagerEmail    string           `json:"manager_email"`
	ManagerPhone    string           `json:"manager_phone"`
	ManagerExt      string           `json:"manager_ext"`
	ContactExt      string           `json:"contact_ext"`
	ReturnBy        *string          `json:"return_by"`
	CEOName         string           `json:"ceo_name"`
	Compensation    Compensation     `json:"compensation"`
	Responsibilities string          `json:"responsibilities"`
	Requirements    string           `json:"requirements"`
	Terms           string           `json:"terms"`
	FlatServices    SelectedServices `json:"flat_services"`
	TieredServices  SelectedServices `json:"tiered_services"`
	Status          OfferStatus      `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
