package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. negative amount, start date after end date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrSchemaMissing is returned when a query fails because the application
// tables have not been created yet (SQLSTATE 42P01, undefined_table).
// Handlers should map this to a persistent "setup required" response rather
// than a transient server error — the condition does not clear until the
// schema-setup tool has been run.
var ErrSchemaMissing = errors.New("database schema missing")
