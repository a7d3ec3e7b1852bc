package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/branch-hr-api/internal/middleware"
)

// Handlers - набор хендлеров API
type Handlers struct {
	Departments *DepartmentHandler
	Employees   *EmployeeHandler
	Vacations   *VacationHandler
	Loans       *LoanHandler
	Reports     *ReportHandler
}

// Router настраивает маршруты API
type Router struct {
	handlers       Handlers
	allowedOrigins []string
	logger         *slog.Logger
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		handlers:       handlers,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Logger снаружи Recoverer, чтобы ответ 500 после паники попал в лог
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Recoverer(rt.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))
	r.Use(middleware.ContentType)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/departments", func(r chi.Router) {
		h := rt.handlers.Departments
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/tree", h.Tree)
		r.Get("/roots", h.Roots)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Route("/employees", func(r chi.Router) {
		h := rt.handlers.Employees
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)

		r.Get("/{id}/vacations", rt.handlers.Vacations.ListByEmployee)
		r.Post("/{id}/vacations", rt.handlers.Vacations.Create)
		r.Post("/{id}/vacations/preview", rt.handlers.Vacations.PreviewForEmployee)

		r.Get("/{id}/loans", rt.handlers.Loans.ListByEmployee)
		r.Post("/{id}/loans", rt.handlers.Loans.Create)
	})

	r.Post("/vacations/preview", rt.handlers.Vacations.Preview)
	r.Delete("/vacations/{id}", rt.handlers.Vacations.Delete)
	r.Delete("/loans/{id}", rt.handlers.Loans.Delete)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/headcount", rt.handlers.Reports.Headcount)
		r.Get("/salary-sheet.csv", rt.handlers.Reports.SalarySheet)
	})

	return r
}
