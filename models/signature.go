package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SignatureType distinguishes the two internal signature slots of a profile
type SignatureType string

const (
	SignatureHiree   SignatureType = "hiree"
	SignatureCompany SignatureType = "company"
)

// SignerRole identifies who signed through a public link
type SignerRole string

const (
	SignerTenant SignerRole = "tenant"
	SignerHiree  SignerRole = "hiree"
)

// Signature is a raster signature image captured in-app, stored as a data
// URL, used when generating and previewing documents internally.
type Signature struct {
	ID            uuid.UUID     `json:"id"`
	ProfileID     uuid.UUID     `json:"profile_id"`
	CompanyID     *uuid.UUID    `json:"company_id"`
	SignatureType SignatureType `json:"signature_type"`
	SignatureData string        `json:"signature_data"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SignatureDocument is the frozen snapshot a signing link binds to
type SignatureDocument struct {
	Type  DocumentType `json:"type"`
	Title string       `json:"title"`
	HTML  string       `json:"html"`
}

// Value implements driver.Valuer for JSONB
func (d SignatureDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *SignatureDocument) Scan(value interface{}) error {
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
	return json.Unmarshal(bytes, d)
}

// SignatureLink is a shareable, tokenized signing record. It freezes the
// rendered document at link-creation time and tracks the single
// unsigned -> signed transition.
type SignatureLink struct {
	ID                  uuid.UUID         `json:"id"`
	ProfileID           uuid.UUID         `json:"profile_id"`
	CompanyID           uuid.UUID         `json:"company_id"`
	DocumentType        DocumentType      `json:"document_type"`
	DocumentData        SignatureDocument `json:"document_data"`
	SignatureToken      string            `json:"signature_token"`
	IsSigned            bool              `json:"is_signed"`
	SignedAt            *time.Time        `json:"signed_at,omitempty"`
	SignedBy            *SignerRole       `json:"signed_by,omitempty"`
	TenantSignatureData *string           `json:"tenant_signature_data,omitempty"`
	HireeSignatureData  *string           `json:"hiree_signature_data,omitempty"`
	TenantInitialData   *string           `json:"tenant_initial_data,omitempty"`
	HireeInitialData    *string           `json:"hiree_initial_data,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// SignatureResetLog records a tenant clearing a signed link
type SignatureResetLog struct {
	ID              uuid.UUID `json:"id"`
	SignatureLinkID uuid.UUID `json:"signature_link_id"`
	ResetBy         uuid.UUID `json:"reset_by"`
	ResetReason     *string   `json:"reset_reason"`
	ResetAt         time.Time `json:"reset_at"`
}

// HireeAccess is a tokenized, expiring, single-use access grant letting a
// hiree open their profile without a full account.
type HireeAccess struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsUsed      bool      `json:"is_used"`
	CreatedAt   time.Time `json:"created_at"`
}
