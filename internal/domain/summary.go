package domain

import "github.com/shopspring/decimal"

// Summary is the running paid/pending split over the full trip set.
// It is recomputed from scratch on every refresh; there is no incremental
// bookkeeping to drift out of sync.
type Summary struct {
	TotalPaid    decimal.Decimal
	TotalPending decimal.Decimal
}

// SummarizeTrips computes the paid/pending totals for the given trips.
func SummarizeTrips(trips []Trip) Summary {
	var s Summary
	for _, t := range trips {
		switch t.Status {
		case TripStatusPaid:
			s.TotalPaid = s.TotalPaid.Add(t.Amount)
		case TripStatusUnpaid:
			s.TotalPending = s.TotalPending.Add(t.Amount)
		}
	}
	return s
}
