package domain

import "errors"

// Domain errors as sentinel values
var (
	// Validation errors (blank or missing input)
	ErrMissingClientCode  = errors.New("client code is required")
	ErrMissingClientName  = errors.New("client name is required")
	ErrMissingProductName = errors.New("product name is required")

	// Lookup errors
	ErrClientNotFound  = errors.New("client not found")
	ErrProductNotFound = errors.New("product not found")

	// Business rule errors
	ErrSameClient = errors.New("cannot establish equivalence between products of the same client")

	// Persistence errors
	ErrNothingInserted = errors.New("no rows were written")
)
