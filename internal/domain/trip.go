// Package domain contains the core data types for the Siva Cabs bookkeeping
// application. This package has no knowledge of HTTP or SQL and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripStatus is the payment status of a trip. It is exactly one of two values.
type TripStatus string

const (
	TripStatusPaid   TripStatus = "paid"
	TripStatusUnpaid TripStatus = "unpaid"
)

// Valid reports whether s is one of the two recognised statuses.
func (s TripStatus) Valid() bool {
	return s == TripStatusPaid || s == TripStatusUnpaid
}

// Trip is one billable cab journey. Amount is the fare in rupees; Date is the
// calendar day the trip happened (time of day is not recorded).
type Trip struct {
	ID           uuid.UUID
	Date         time.Time
	CustomerName string
	Place        string
	Amount       decimal.Decimal
	Status       TripStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
