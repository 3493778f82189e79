package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoContent indicates an export email carried no recognisable
	// document (no PDF attachment and no download links).
	ErrNoContent = errors.New("no content found")

	// ErrVaultNotConfigured indicates the vault path is missing from
	// configuration.
	ErrVaultNotConfigured = errors.New("vault path not configured")

	// ErrAuthRequired indicates the mail source requires authentication
	// but no cached token is available.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
