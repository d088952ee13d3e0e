package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// reportRequest is the JSON body for POST /reports. Which fields are
// required depends on type: date (daily), month as "2006-01" (monthly),
// year (yearly), start_date+end_date (range).
type reportRequest struct {
	Type      string `json:"type"`
	Date      string `json:"date,omitempty"`
	Month     string `json:"month,omitempty"`
	Year      int    `json:"year,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// reportResponse is the JSON representation of a generated report.
type reportResponse struct {
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	Trips          []tripResponse   `json:"trips"`
	DieselExpenses []dieselResponse `json:"diesel_expenses"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	TotalPaid      decimal.Decimal  `json:"total_paid"`
	TotalPending   decimal.Decimal  `json:"total_pending"`
	TotalDiesel    decimal.Decimal  `json:"total_diesel"`
	NetAmount      decimal.Decimal  `json:"net_amount"`
}

// handleReport handles POST /reports. The default response is JSON;
// ?format=csv and ?format=pdf return a downloadable file instead, with the
// file name encoding the report type and date bounds.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var body reportRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	req, err := body.toDomain()
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rep, err := s.reports.Build(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, reportToResponse(rep))
	case "csv":
		writeDownload(w, req.FileName("csv"), "text/csv; charset=utf-8", s.reports.CSV(rep))
	case "pdf":
		doc, err := s.reports.PDF(rep, req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeDownload(w, req.FileName("pdf"), "application/pdf", doc)
	default:
		writeBadRequest(w, "format must be json, csv, or pdf")
	}
}

// toDomain parses the wire-level request into a typed domain.ReportRequest.
// Presence checks happen here; cross-field rules (start after end) stay in
// the domain's Interval resolution.
func (b reportRequest) toDomain() (domain.ReportRequest, error) {
	req := domain.ReportRequest{Type: domain.ReportType(b.Type)}

	switch req.Type {
	case domain.ReportDaily:
		d, err := parseDate(b.Date)
		if err != nil {
			return domain.ReportRequest{}, err
		}
		req.Date = d

	case domain.ReportMonthly:
		m, err := time.Parse("2006-01", b.Month)
		if err != nil {
			return domain.ReportRequest{}, fmt.Errorf("invalid month %q: expected YYYY-MM", b.Month)
		}
		req.Year, req.Month = m.Year(), m.Month()

	case domain.ReportYearly:
		req.Year = b.Year

	case domain.ReportRange:
		// Missing dates pass through as zero values so the domain layer
		// reports them as a validation error, not a malformed request.
		if b.StartDate != "" {
			d, err := parseDate(b.StartDate)
			if err != nil {
				return domain.ReportRequest{}, err
			}
			req.Start = d
		}
		if b.EndDate != "" {
			d, err := parseDate(b.EndDate)
			if err != nil {
				return domain.ReportRequest{}, err
			}
			req.End = d
		}

	default:
		return domain.ReportRequest{}, fmt.Errorf("type must be daily, monthly, yearly, or range")
	}

	return req, nil
}

func reportToResponse(rep domain.Report) reportResponse {
	out := reportResponse{
		StartDate:      rep.StartDate.Format(dateLayout),
		EndDate:        rep.EndDate.Format(dateLayout),
		Trips:          make([]tripResponse, 0, len(rep.Trips)),
		DieselExpenses: make([]dieselResponse, 0, len(rep.DieselExpenses)),
		TotalAmount:    rep.TotalAmount,
		TotalPaid:      rep.TotalPaid,
		TotalPending:   rep.TotalPending,
		TotalDiesel:    rep.TotalDiesel,
		NetAmount:      rep.NetAmount,
	}
	for _, t := range rep.Trips {
		out.Trips = append(out.Trips, tripToResponse(t))
	}
	for _, e := range rep.DieselExpenses {
		out.DieselExpenses = append(out.DieselExpenses, dieselToResponse(e))
	}
	return out
}

// writeDownload sends body as a file attachment.
func writeDownload(w http.ResponseWriter, fileName, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
