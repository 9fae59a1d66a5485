package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindConfiguration marks a malformed unit price set.
	KindConfiguration ErrorKind = iota
	// KindValidation marks a rejected cart operation.
	KindValidation
)

const (
	ErrMsgNoBaseUnit          = "unit prices have no base unit"
	ErrMsgMultipleBaseUnits   = "unit prices have more than one base unit"
	ErrMsgEqualWithPositive   = "equalWith must be positive"
	ErrMsgNegativeStock       = "stock cannot be negative"
	ErrMsgNegativePrice       = "price per unit cannot be negative"
	ErrMsgQuantityPositive    = "quantity must be at least 1"
	ErrMsgQuantityTooLarge    = "quantity is too large"
	ErrMsgInsufficientStock   = "insufficient stock"
	ErrMsgItemNotInCart       = "item not in cart"
	ErrMsgUnitNotInProduct    = "unit price does not belong to product"
	ErrMsgCurrencyMismatch    = "currency mismatch"
	ErrMsgProductIDRequired   = "farm waste ID is required"
	ErrMsgUnitNameRequired    = "unit name is required"
	ErrMsgDuplicateUnitPrice  = "duplicate unit price ID"
	ErrMsgUnitPriceTaken      = "unit price ID belongs to another farm waste"
	ErrMsgProductNameRequired = "farm waste name is required"
	ErrMsgOwnerIDRequired     = "owner ID is required"
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "CONFIGURATION"
	case KindValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Error is returned by every rejected domain operation. Message is safe to show to users.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func NewConfigurationErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewValidationErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err wraps a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return false
	}

	return domainErr.Kind == kind
}
