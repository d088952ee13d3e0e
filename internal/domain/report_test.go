package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivacabs/backend/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func trip(amount string, status domain.TripStatus) domain.Trip {
	return domain.Trip{
		Date:         day(2024, time.June, 1),
		CustomerName: "Kumar",
		Place:        "Airport",
		Amount:       amt(amount),
		Status:       status,
	}
}

// ---- Interval --------------------------------------------------------------

func TestReportRequest_Interval_Daily(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportDaily, Date: day(2024, time.June, 15)}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 15), start)
	assert.Equal(t, start, end, "a daily report covers exactly one day")
}

func TestReportRequest_Interval_Daily_MissingDate(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportDaily}

	_, _, err := req.Interval()

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportRequest_Interval_Monthly_LeapFebruary(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportMonthly, Year: 2024, Month: time.February}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 1), start)
	assert.Equal(t, day(2024, time.February, 29), end, "2024 is a leap year")
}

func TestReportRequest_Interval_Monthly_ShortFebruary(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportMonthly, Year: 2023, Month: time.February}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2023, time.February, 1), start)
	assert.Equal(t, day(2023, time.February, 28), end)
}

func TestReportRequest_Interval_Monthly_December(t *testing.T) {
	// Month+1 rolls over into the next year; day zero must still land on Dec 31.
	req := domain.ReportRequest{Type: domain.ReportMonthly, Year: 2024, Month: time.December}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2024, time.December, 1), start)
	assert.Equal(t, day(2024, time.December, 31), end)
}

func TestReportRequest_Interval_Yearly(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportYearly, Year: 2024}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 1), start)
	assert.Equal(t, day(2024, time.December, 31), end)
}

func TestReportRequest_Interval_Range(t *testing.T) {
	req := domain.ReportRequest{
		Type:  domain.ReportRange,
		Start: day(2024, time.March, 10),
		End:   day(2024, time.April, 5),
	}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 10), start)
	assert.Equal(t, day(2024, time.April, 5), end)
}

func TestReportRequest_Interval_Range_SingleDay(t *testing.T) {
	d := day(2024, time.March, 10)
	req := domain.ReportRequest{Type: domain.ReportRange, Start: d, End: d}

	start, end, err := req.Interval()

	require.NoError(t, err)
	assert.Equal(t, d, start)
	assert.Equal(t, d, end)
}

func TestReportRequest_Interval_Range_MissingBound(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportRange, Start: day(2024, time.March, 10)}

	_, _, err := req.Interval()

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportRequest_Interval_Range_StartAfterEnd(t *testing.T) {
	req := domain.ReportRequest{
		Type:  domain.ReportRange,
		Start: day(2024, time.April, 5),
		End:   day(2024, time.March, 10),
	}

	_, _, err := req.Interval()

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportRequest_Interval_UnknownType(t *testing.T) {
	req := domain.ReportRequest{Type: "weekly"}

	_, _, err := req.Interval()

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- FileName --------------------------------------------------------------

func TestReportRequest_FileName(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ReportRequest
		want string
	}{
		{
			name: "daily",
			req:  domain.ReportRequest{Type: domain.ReportDaily, Date: day(2024, time.June, 15)},
			want: "siva-cabs-report-daily-2024-06-15.csv",
		},
		{
			name: "monthly",
			req:  domain.ReportRequest{Type: domain.ReportMonthly, Year: 2024, Month: time.February},
			want: "siva-cabs-report-monthly-2024-02.csv",
		},
		{
			name: "yearly",
			req:  domain.ReportRequest{Type: domain.ReportYearly, Year: 2024},
			want: "siva-cabs-report-yearly-2024.csv",
		},
		{
			name: "range omits the type name",
			req: domain.ReportRequest{
				Type:  domain.ReportRange,
				Start: day(2024, time.March, 10),
				End:   day(2024, time.April, 5),
			},
			want: "siva-cabs-report-2024-03-10-to-2024-04-05.csv",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.FileName("csv"))
		})
	}
}

func TestReportRequest_FileName_PDFExtension(t *testing.T) {
	req := domain.ReportRequest{Type: domain.ReportYearly, Year: 2024}

	assert.Equal(t, "siva-cabs-report-yearly-2024.pdf", req.FileName("pdf"))
}

// ---- NewReport -------------------------------------------------------------

func TestNewReport_Totals(t *testing.T) {
	trips := []domain.Trip{
		trip("500", domain.TripStatusPaid),
		trip("300", domain.TripStatusUnpaid),
	}
	diesel := []domain.DieselExpense{
		{Date: day(2024, time.June, 1), Amount: amt("200")},
	}

	rep := domain.NewReport(day(2024, time.June, 1), day(2024, time.June, 30), trips, diesel)

	assert.True(t, rep.TotalAmount.Equal(amt("800")), "total = %s", rep.TotalAmount)
	assert.True(t, rep.TotalPaid.Equal(amt("500")), "paid = %s", rep.TotalPaid)
	assert.True(t, rep.TotalPending.Equal(amt("300")), "pending = %s", rep.TotalPending)
	assert.True(t, rep.TotalDiesel.Equal(amt("200")), "diesel = %s", rep.TotalDiesel)
	assert.True(t, rep.NetAmount.Equal(amt("600")), "net = %s", rep.NetAmount)
}

func TestNewReport_PaidPlusPendingEqualsTotal(t *testing.T) {
	trips := []domain.Trip{
		trip("123.45", domain.TripStatusPaid),
		trip("0.55", domain.TripStatusUnpaid),
		trip("1000", domain.TripStatusPaid),
	}

	rep := domain.NewReport(day(2024, time.June, 1), day(2024, time.June, 30), trips, nil)

	assert.True(t, rep.TotalPaid.Add(rep.TotalPending).Equal(rep.TotalAmount))
}

func TestNewReport_NetCanBeNegative(t *testing.T) {
	trips := []domain.Trip{trip("100", domain.TripStatusPaid)}
	diesel := []domain.DieselExpense{
		{Date: day(2024, time.June, 1), Amount: amt("250")},
	}

	rep := domain.NewReport(day(2024, time.June, 1), day(2024, time.June, 30), trips, diesel)

	assert.True(t, rep.NetAmount.Equal(amt("-150")), "net = %s", rep.NetAmount)
}

func TestNewReport_Empty(t *testing.T) {
	rep := domain.NewReport(day(2024, time.June, 1), day(2024, time.June, 30), nil, nil)

	assert.True(t, rep.TotalAmount.IsZero())
	assert.True(t, rep.NetAmount.IsZero())
	assert.Empty(t, rep.Trips)
	assert.Empty(t, rep.DieselExpenses)
}

// ---- Summary ---------------------------------------------------------------

func TestSummarizeTrips(t *testing.T) {
	trips := []domain.Trip{
		trip("500", domain.TripStatusPaid),
		trip("300", domain.TripStatusUnpaid),
		trip("200", domain.TripStatusUnpaid),
	}

	sum := domain.SummarizeTrips(trips)

	assert.True(t, sum.TotalPaid.Equal(amt("500")), "paid = %s", sum.TotalPaid)
	assert.True(t, sum.TotalPending.Equal(amt("500")), "pending = %s", sum.TotalPending)
}

func TestSummarizeTrips_Empty(t *testing.T) {
	sum := domain.SummarizeTrips(nil)

	assert.True(t, sum.TotalPaid.IsZero())
	assert.True(t, sum.TotalPending.IsZero())
}
