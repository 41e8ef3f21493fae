package service

import "errors"

// Sentinel errors returned across services. Handlers map these to HTTP
// status codes and stable error codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidTiers       = errors.New("tier ranges must not overlap and max must be >= min")
	ErrInvalidServiceType = errors.New("unknown service type")
	ErrInvalidDocType     = errors.New("unknown document type")
	ErrNoOffer            = errors.New("profile has no offer")
	ErrAlreadySigned      = errors.New("document already signed")
	ErrLinkExpired        = errors.New("access link expired or already used")
	ErrNothingToEstimate  = errors.New("no gear items to estimate")
)
