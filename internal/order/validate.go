// Package order validates diner details and submits orders to the restaurant API.
package order

import (
	"errors"
	"regexp"
	"strings"

	"aroma-storefront/internal/domain"
)

type ValidationKind string

const (
	KindMissingFields ValidationKind = "missing_fields"
	KindInvalidEmail  ValidationKind = "invalid_email"
)

var (
	ErrMissingFields = errors.New("missing customer name or email")
	ErrInvalidEmail  = errors.New("invalid customer email")
)

// printable ASCII without space or '@' on each side, and a dot after the '@'.
var emailPattern = regexp.MustCompile(`^[!-?A-~]+@[!-?A-~]+\.[!-?A-~]+$`)

// ValidationError carries the message shown to the diner next to the form.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMissingFields:
		return e.Kind == KindMissingFields
	case ErrInvalidEmail:
		return e.Kind == KindInvalidEmail
	}
	return false
}

func ValidateCustomer(info domain.CustomerInfo) error {
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Email) == "" {
		return &ValidationError{Kind: KindMissingFields, Message: "Please fill in both name and email"}
	}
	if !emailPattern.MatchString(info.Email) {
		return &ValidationError{Kind: KindInvalidEmail, Message: "Please enter a valid email address"}
	}
	return nil
}
