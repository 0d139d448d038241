// Package service implements the business workflows on top of the
// repositories: review submission with rating aggregation, coupon
// evaluation, order placement, image lifecycle, and account handling.
package service

// ValidationError covers missing or malformed input (HTTP 400).
type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError covers lookups that matched nothing (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthError covers bad credentials and invalid tokens (HTTP 401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ConflictError covers duplicate unique fields (HTTP 409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
