package session

import "errors"

var (
	// ErrSourceRequired is returned when a data source is not provided.
	ErrSourceRequired = errors.New("data source required")

	// ErrInvalidSource is returned when a data source is neither a List
	// nor a Fetcher.
	ErrInvalidSource = errors.New("data source must be a List or a Fetcher")

	// ErrNegativeMax is returned when the result cap is negative.
	ErrNegativeMax = errors.New("max must be >= 0")
)
