package domain

// PurgeTarget selects which tables a period deletion touches.
type PurgeTarget string

const (
	PurgeTrips  PurgeTarget = "trips"
	PurgeDiesel PurgeTarget = "diesel"
	PurgeBoth   PurgeTarget = "both"
)

// Valid reports whether t is a recognised purge target.
func (t PurgeTarget) Valid() bool {
	return t == PurgeTrips || t == PurgeDiesel || t == PurgeBoth
}

// IncludesTrips reports whether the trips table is in scope.
func (t PurgeTarget) IncludesTrips() bool { return t == PurgeTrips || t == PurgeBoth }

// IncludesDiesel reports whether the diesel_expenses table is in scope.
func (t PurgeTarget) IncludesDiesel() bool { return t == PurgeDiesel || t == PurgeBoth }

// PurgePreview holds the row counts a pending deletion would remove.
// Counts are zero for tables outside the selected target.
type PurgePreview struct {
	Trips  int64
	Diesel int64
}

// PurgeResult holds the rows actually removed by a confirmed deletion.
// When the second table's delete fails the first table's count is still
// reported — the two deletes are not wrapped in a transaction.
type PurgeResult struct {
	TripsDeleted  int64
	DieselDeleted int64
}
