package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies one of the five generated document types
type DocumentType string

const (
	DocWaiver     DocumentType = "waiver"
	DocNoncompete DocumentType = "noncompete"
	DocGear       DocumentType = "gear"
	DocPay        DocumentType = "pay"
	DocOffer      DocumentType = "offer"
)

// DocumentTypes lists all document types in display order
var DocumentTypes = []DocumentType{DocWaiver, DocNoncompete, DocGear, DocPay, DocOffer}

// ValidDocumentType reports whether t is a known document type
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocWaiver, DocNoncompete, DocGear, DocPay, DocOffer:
		return true
	}
	return false
}

// DocumentTitle returns the printed title for a document type
func DocumentTitle(t DocumentType) string {
	switch t {
	case DocWaiver:
		return "Training Waiver & Liability Release"
	case DocNoncompete:
		return "Non-Compete Agreement"
	case DocGear:
		return "Equipment, Gear & Supply Obligations"
	case DocPay:
		return "Compensation Agreement"
	case DocOffer:
		return "Acceptance Letter"
	}
	return string(t)
}

// Template is the per-(profile, document type) customization: the clauses
// for the initials page and one free-text addendum block.
type Template struct {
	ID           uuid.UUID    `json:"id"`
	ProfileID    uuid.UUID    `json:"profile_id"`
	DocumentType DocumentType `json:"document_type"`
	Clauses      []string     `json:"clauses"`
	Addendum     string       `json:"addendum"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
