package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrCancelBlocked   = errors.New("booking has served instances and cannot be cancelled")
	ErrInvalidStatus   = errors.New("invalid booking status transition")

	// Fulfillment errors
	ErrInstanceNotFound  = errors.New("service instance not found")
	ErrInvalidTransition = errors.New("transition not allowed from current state")
	ErrNotOwner          = errors.New("actor does not hold the claim")
	ErrAlreadyClaimed    = errors.New("instance already claimed by another staff member")
	ErrStaleState        = errors.New("instance state changed concurrently")

	// Voucher / gift certificate errors
	ErrInvalidCode  = errors.New("invalid code")
	ErrNotClaimable = errors.New("gift certificate is not claimable")

	// Catalog errors
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceSetNotFound = errors.New("service set not found")

	// Operation errors
	ErrTransientIO             = errors.New("transient store failure")
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
