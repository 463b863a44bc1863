package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Constraint violations
	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
	ErrCategoryIsSystem      = errors.New("system categories cannot be deleted")
	ErrCategoryReferenced    = errors.New("the category cannot be deleted while expenses reference it")
	ErrCategoryDoesNotExist  = errors.New("the referenced category does not exist")

	// Validation failures. These are checked before anything is persisted.
	ErrNameEmpty         = errors.New("the name must not be empty")
	ErrNameTooLong       = errors.New("the name must be 100 characters or less")
	ErrColorInvalid      = errors.New("the color must be a hex value like #6366f1")
	ErrAmountNotPositive = errors.New("the amount must be positive")
	ErrLimitNegative     = errors.New("the limit must not be negative")
)
