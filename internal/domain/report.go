package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType selects how the reporting interval is derived.
type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportMonthly ReportType = "monthly"
	ReportYearly  ReportType = "yearly"
	ReportRange   ReportType = "range"
)

// ReportRequest carries the inputs for one report. Which fields are read
// depends on Type: Date for daily, Year+Month for monthly, Year for yearly,
// Start+End for range. Interval resolves them into concrete bounds.
type ReportRequest struct {
	Type  ReportType
	Date  time.Time
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// Interval resolves the request into an inclusive [start, end] date interval.
// Returns ErrValidation when required inputs are missing or out of order.
func (r ReportRequest) Interval() (time.Time, time.Time, error) {
	switch r.Type {
	case ReportDaily:
		if r.Date.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
		}
		d := dateOnly(r.Date)
		return d, d, nil

	case ReportMonthly:
		if r.Year < 1 || r.Month < time.January || r.Month > time.December {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: month is required", ErrValidation)
		}
		start := time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC)
		// Day zero of the following month normalizes to the last day of
		// this month, which handles 28/29/30/31 (and leap years) for free.
		end := time.Date(r.Year, r.Month+1, 0, 0, 0, 0, 0, time.UTC)
		return start, end, nil

	case ReportYearly:
		if r.Year < 1 {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: year is required", ErrValidation)
		}
		start := time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(r.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil

	case ReportRange:
		if r.Start.IsZero() || r.End.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: both start and end dates are required", ErrValidation)
		}
		start, end := dateOnly(r.Start), dateOnly(r.End)
		if start.After(end) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start date must be before or equal to end date", ErrValidation)
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report type %q", ErrValidation, r.Type)
	}
}

// FileName returns the download file name for an export of this report,
// e.g. "siva-cabs-report-monthly-2024-02.csv". Range reports encode both
// bounds instead of the type name. ext is passed without a leading dot.
func (r ReportRequest) FileName(ext string) string {
	if r.Type == ReportRange {
		return fmt.Sprintf("siva-cabs-report-%s-to-%s.%s",
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"), ext)
	}
	return fmt.Sprintf("siva-cabs-report-%s-%s.%s", r.Type, r.slug(), ext)
}

// slug is the date portion of the export file name.
func (r ReportRequest) slug() string {
	switch r.Type {
	case ReportDaily:
		return r.Date.Format("2006-01-02")
	case ReportMonthly:
		return fmt.Sprintf("%04d-%02d", r.Year, int(r.Month))
	case ReportYearly:
		return fmt.Sprintf("%04d", r.Year)
	}
	return ""
}

// Report is the derived result for one reporting interval. It is never
// persisted. Invariants: TotalAmount = TotalPaid + TotalPending and
// NetAmount = TotalAmount - TotalDiesel.
type Report struct {
	StartDate      time.Time
	EndDate        time.Time
	Trips          []Trip
	DieselExpenses []DieselExpense
	TotalAmount    decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalPending   decimal.Decimal
	TotalDiesel    decimal.Decimal
	NetAmount      decimal.Decimal
}

// NewReport computes all aggregate figures for the given rows.
// Trips whose status is neither paid nor unpaid still count towards
// TotalAmount; the two recognised statuses partition it otherwise.
func NewReport(start, end time.Time, trips []Trip, diesel []DieselExpense) Report {
	rep := Report{
		StartDate:      start,
		EndDate:        end,
		Trips:          trips,
		DieselExpenses: diesel,
	}
	for _, t := range trips {
		rep.TotalAmount = rep.TotalAmount.Add(t.Amount)
		switch t.Status {
		case TripStatusPaid:
			rep.TotalPaid = rep.TotalPaid.Add(t.Amount)
		case TripStatusUnpaid:
			rep.TotalPending = rep.TotalPending.Add(t.Amount)
		}
	}
	for _, e := range diesel {
		rep.TotalDiesel = rep.TotalDiesel.Add(e.Amount)
	}
	rep.NetAmount = rep.TotalAmount.Sub(rep.TotalDiesel)
	return rep
}

// dateOnly truncates t to midnight UTC so interval comparisons work on
// calendar days regardless of the time component callers pass in.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
