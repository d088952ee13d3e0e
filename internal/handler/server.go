// Package handler implements the HTTP layer of the Siva Cabs backend.
// All handlers are methods on Server; they decode JSON, call a service
// interface, and map domain errors onto HTTP status codes. Methods are split
// into entity-specific files but all share the same Server struct.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sivacabs/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlaceServicer defines the business operations the place handlers depend on.
type PlaceServicer interface {
	Create(ctx context.Context, place domain.Place) (domain.Place, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
	Update(ctx context.Context, place domain.Place) (domain.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Suggest(ctx context.Context, query string) ([]domain.Place, error)
}

// DieselServicer defines the business operations the expense handlers depend on.
type DieselServicer interface {
	Create(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.DieselExpense, error)
	List(ctx context.Context) ([]domain.DieselExpense, error)
	Update(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportServicer builds period reports and renders them for download.
type ReportServicer interface {
	Build(ctx context.Context, req domain.ReportRequest) (domain.Report, error)
	CSV(rep domain.Report) []byte
	PDF(rep domain.Report, req domain.ReportRequest) ([]byte, error)
}

// SummaryServicer returns the paid/pending totals over the full trip set.
type SummaryServicer interface {
	Get(ctx context.Context, force bool) (domain.Summary, error)
}

// PurgeServicer previews and executes period deletions.
type PurgeServicer interface {
	Preview(ctx context.Context, start, end time.Time, target domain.PurgeTarget) (domain.PurgePreview, error)
	Execute(ctx context.Context, start, end time.Time, target domain.PurgeTarget) (domain.PurgeResult, error)
}

// AuthServicer verifies the operator credential pair and issues session tokens.
type AuthServicer interface {
	Login(username, password string) (string, error)
	Username() string
}

// Server holds every handler's dependencies. Construct with NewServer and
// mount the result of Routes.
type Server struct {
	trips   TripServicer
	places  PlaceServicer
	diesel  DieselServicer
	reports ReportServicer
	summary SummaryServicer
	purge   PurgeServicer
	auth    AuthServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	places PlaceServicer,
	diesel DieselServicer,
	reports ReportServicer,
	summary SummaryServicer,
	purge PurgeServicer,
	auth AuthServicer,
) *Server {
	return &Server{
		trips:   trips,
		places:  places,
		diesel:  diesel,
		reports: reports,
		summary: summary,
		purge:   purge,
		auth:    auth,
	}
}

// Routes builds the API router. authn guards everything except the health
// check and the login endpoint.
func (s *Server) Routes(authn func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.handleListTrips)
			r.Post("/", s.handleCreateTrip)
			r.Get("/{id}", s.handleGetTrip)
			r.Put("/{id}", s.handleUpdateTrip)
			r.Delete("/{id}", s.handleDeleteTrip)
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/", s.handleListPlaces)
			r.Post("/", s.handleCreatePlace)
			r.Get("/suggest", s.handleSuggestPlaces)
			r.Get("/{id}", s.handleGetPlace)
			r.Put("/{id}", s.handleUpdatePlace)
			r.Delete("/{id}", s.handleDeletePlace)
		})

		r.Route("/diesel-expenses", func(r chi.Router) {
			r.Get("/", s.handleListDiesel)
			r.Post("/", s.handleCreateDiesel)
			r.Get("/{id}", s.handleGetDiesel)
			r.Put("/{id}", s.handleUpdateDiesel)
			r.Delete("/{id}", s.handleDeleteDiesel)
		})

		r.Get("/summary", s.handleSummary)
		r.Post("/reports", s.handleReport)
		r.Post("/purge/preview", s.handlePurgePreview)
		r.Post("/purge", s.handlePurge)
	})

	return r
}

// urlID parses the {id} path parameter as a UUID.
func urlID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
