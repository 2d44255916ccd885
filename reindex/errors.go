package reindex

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrRepositoryRequired is returned when no record repository is provided.
	ErrRepositoryRequired = errors.New("record repository is required")

	// ErrProviderRequired is returned when no AI provider is provided.
	ErrProviderRequired = errors.New("AI provider is required")

	// ErrNoRecords is returned when the repository holds no records to index.
	ErrNoRecords = errors.New("no records to index")
)
