package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Place is a frequently visited destination with a suggested default fare.
// The default amount pre-fills the trip form when the place is selected;
// it is a convenience, not a constraint on the trip amount.
type Place struct {
	ID            uuid.UUID
	PlaceName     string
	DefaultAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
