package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrDuplicateLocalID    = errors.New("duplicate local id")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
)

// Field validation errors. All of them match ErrValidation with errors.Is.
var (
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be a positive number with at most 13 integer digits", ErrValidation)
	ErrInvalidType        = fmt.Errorf("%w: type must be income or expense", ErrValidation)
	ErrInvalidDate        = fmt.Errorf("%w: transaction_date must be a valid date", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: description too long (max %d characters)", ErrValidation, MaxDescriptionLength)
	ErrLocalIDTooLong     = fmt.Errorf("%w: local_id too long (max %d characters)", ErrValidation, MaxLocalIDLength)
	ErrInvalidAccountID   = fmt.Errorf("%w: account_id must be a positive integer", ErrValidation)
	ErrInvalidCategoryID  = fmt.Errorf("%w: category_id must be a positive integer", ErrValidation)
	ErrInvalidDeviceID    = fmt.Errorf("%w: device_id is required (max %d characters)", ErrValidation, MaxLocalIDLength)
	ErrBatchTooLarge      = fmt.Errorf("%w: too many transactions in one batch", ErrValidation)
	ErrInvalidRange       = fmt.Errorf("%w: startDate and endDate are required and startDate must not be after endDate", ErrValidation)
	ErrInvalidName        = fmt.Errorf("%w: name must be 2-100 characters", ErrValidation)
)

// Error codes reported per item in a sync batch.
const (
	CodeAccessDenied        = "access_denied"
	CodeInvalidReference    = "invalid_reference"
	CodeValidation          = "validation_failed"
	CodeConstraintViolation = "constraint_violation"
	CodeInternal            = "internal"
)

// ErrorCode classifies err into one of the per-item codes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAccessDenied):
		return CodeAccessDenied
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrConflict):
		return CodeConstraintViolation
	default:
		return CodeInternal
	}
}

// IsRetryable reports whether resubmitting the same item can succeed later.
// Ownership, reference and validation failures are permanent.
func IsRetryable(err error) bool {
	return err != nil && ErrorCode(err) == CodeInternal
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors. It matches ErrValidation with errors.Is.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error { return ErrValidation }

// Add records a problem with field.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns nil when no field error was recorded.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
