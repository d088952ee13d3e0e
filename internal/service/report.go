package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// ReportService builds period reports over trips and diesel expenses and
// renders them for download. A report is derived data: nothing here writes
// to the store, and a failed fetch produces no partial report.
type ReportService struct {
	trips  repo.TripRepo
	diesel repo.DieselRepo
}

// NewReportService constructs a ReportService backed by the provided repos.
func NewReportService(trips repo.TripRepo, diesel repo.DieselRepo) *ReportService {
	return &ReportService{trips: trips, diesel: diesel}
}

// Build resolves the reporting interval, fetches both row sets, and computes
// the aggregate figures. Trips come back ordered by date ascending.
func (s *ReportService) Build(ctx context.Context, req domain.ReportRequest) (domain.Report, error) {
	start, end, err := req.Interval()
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Build: %w", err)
	}

	trips, err := s.trips.ListByDateRange(ctx, start, end)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Build: %w", err)
	}

	diesel, err := s.diesel.ListByDateRange(ctx, start, end)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService.Build: %w", err)
	}

	return domain.NewReport(start, end, trips, diesel), nil
}

// csvHeader is the first line of every CSV export. Downstream spreadsheets
// key on these exact column names.
const csvHeader = "Date,Customer Name,Place,Amount,Status"

// CSV renders the report's trips as delimited text: the fixed header line,
// then one row per trip with every field double-quoted. Amounts are written
// at their stored two-decimal scale (no currency symbol) so the column stays
// numeric in spreadsheets.
// Field values are wrapped in quotes as-is; embedded double quotes are not
// escaped, matching the format the operator's spreadsheets already ingest.
func (s *ReportService) CSV(rep domain.Report) []byte {
	var buf bytes.Buffer
	buf.WriteString(csvHeader)
	for _, t := range rep.Trips {
		buf.WriteByte('\n')
		writeCSVRow(&buf,
			t.Date.Format("2006-01-02"),
			t.CustomerName,
			t.Place,
			t.Amount.StringFixed(2),
			string(t.Status),
		)
	}
	return buf.Bytes()
}

// writeCSVRow writes one comma-separated line with each field double-quoted.
func writeCSVRow(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(f)
		buf.WriteByte('"')
	}
}
