package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DieselExpense is one fuel purchase. Expenses are independent of trips;
// they only meet in period reports, where fuel cost is subtracted from
// trip revenue.
type DieselExpense struct {
	ID        uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
