package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appai "github.com/credastra/riskreview/internal/application/ai"
	appcases "github.com/credastra/riskreview/internal/application/cases"
	"github.com/credastra/riskreview/internal/application/review"
	domai "github.com/credastra/riskreview/internal/domain/ai"
	domcases "github.com/credastra/riskreview/internal/domain/cases"
	"github.com/credastra/riskreview/internal/domain/documents"
	"github.com/credastra/riskreview/internal/domain/risk"
	"github.com/credastra/riskreview/internal/middleware"
)

type Router struct {
	casesSvc  *appcases.Service
	reviewSvc *review.Service
	aiSvc     *appai.Service
}

func NewRouter(casesSvc *appcases.Service, reviewSvc *review.Service, aiSvc *appai.Service) http.Handler {
	r := &Router{casesSvc: casesSvc, reviewSvc: reviewSvc, aiSvc: aiSvc}
	mux := chi.NewRouter()

	// The admin dashboard is a browser SPA served from another origin.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1/cases", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleCreateCase))
		rt.Get("/", r.wrap(r.handleListCases))
		rt.Get("/{id}", r.wrap(r.handleGetCase))
		rt.Get("/{id}/risk-report", r.wrap(r.handleRiskReport))
		rt.Post("/{id}/decision", r.wrap(r.handleDecision))
		rt.Post("/{id}/documents", r.wrap(r.handleUploadDocument))
		rt.Get("/{id}/documents", r.wrap(r.handleListDocuments))
		rt.Post("/{id}/ai-review", r.wrap(r.handleAIReview))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domcases.ErrNotFound), errors.Is(err, sql.ErrNoRows):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, risk.ErrAnalysisUnavailable):
				http.Error(w, "risk analysis unavailable, try again later", http.StatusBadGateway)
			case errors.Is(err, domai.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /v1/cases
func (r *Router) handleCreateCase(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		UserID        string  `json:"user_id"`
		Email         string  `json:"email"`
		Name          string  `json:"name"`
		LoanType      string  `json:"loan_type"`
		ApplicantType string  `json:"applicant_type"`
		LoanAmount    float64 `json:"loan_amount"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}

	app, err := r.casesSvc.Create(req.Context(), appcases.CreateCommand{
		UserID:        middleware.SanitizeString(body.UserID),
		Email:         middleware.SanitizeString(body.Email),
		Name:          middleware.SanitizeString(body.Name),
		LoanType:      body.LoanType,
		ApplicantType: body.ApplicantType,
		LoanAmount:    body.LoanAmount,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, app)
}

// GET /v1/cases?user_id=&status=&limit=
func (r *Router) handleListCases(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.casesSvc.List(req.Context(),
		req.URL.Query().Get("user_id"),
		req.URL.Query().Get("status"),
		middleware.ValidateLimit(limit),
	)
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// GET /v1/cases/{id}
func (r *Router) handleGetCase(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateCaseID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	app, err := r.casesSvc.Get(req.Context(), domcases.ID(id))
	if err != nil {
		return err
	}
	return writeJSON(w, app)
}

// GET /v1/cases/{id}/risk-report
// Aggregates the analysis backend's per-document anomalies into the
// deduplicated, categorized flag report the review dashboard renders.
func (r *Router) handleRiskReport(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateCaseID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	report, err := r.reviewSvc.BuildCaseReport(req.Context(), id)
	if err != nil {
		middleware.IncrementReportsFailed()
		return err
	}
	middleware.IncrementReports()
	if len(report.FailedDocs) > 0 {
		middleware.IncrementReportsPartial()
	}
	return writeJSON(w, report)
}

// POST /v1/cases/{id}/decision
// Body: {"status": "Approved", "decision": "...", "notes": "..."}
func (r *Router) handleDecision(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	var body struct {
		Status   string `json:"status"`
		Decision string `json:"decision"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}

	d := domcases.Decision{
		Status:     domcases.Status(body.Status),
		Decision:   middleware.SanitizeString(body.Decision),
		Notes:      middleware.SanitizeString(body.Notes),
		ReviewedBy: middleware.GetReviewerFromContext(req.Context()),
	}
	if err := r.casesSvc.Decide(req.Context(), domcases.ID(id), d); err != nil {
		return err
	}
	middleware.IncrementDecisions()
	return writeJSON(w, map[string]any{"application_id": id, "status": d.Status})
}

// POST /v1/cases/{id}/documents  (multipart: file, document_type)
func (r *Router) handleUploadDocument(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return err
	}
	docType := req.FormValue("document_type")
	if err := middleware.ValidateDocumentType(docType); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return err
	}
	defer file.Close()

	// Spool to a temp file; the artifact store uploads from disk and cleans up.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	tmp.Close()

	doc, err := r.casesSvc.AttachDocument(req.Context(), domcases.ID(id),
		documents.Type(docType), tmp.Name())
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return writeJSON(w, doc)
}

// GET /v1/cases/{id}/documents
func (r *Router) handleListDocuments(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	list, err := r.casesSvc.ListDocuments(req.Context(), domcases.ID(id))
	if err != nil {
		return err
	}
	return writeJSON(w, list)
}

// POST /v1/cases/{id}/ai-review
// Builds the current flag report and asks the model for reviewer reasoning.
func (r *Router) handleAIReview(w http.ResponseWriter, req *http.Request) error {
	if r.aiSvc == nil {
		return fmt.Errorf("ai review is not configured")
	}
	id := chi.URLParam(req, "id")

	report, err := r.reviewSvc.BuildCaseReport(req.Context(), id)
	if err != nil {
		return err
	}
	if report.State == review.StateEmpty {
		return writeJSON(w, map[string]any{
			"application_id": id,
			"state":          report.State,
			"message":        "no analyzed documents yet; run analysis first",
		})
	}

	reasoning, err := r.aiSvc.ReviewReport(req.Context(), report)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write([]byte(reasoning))
	return err
}
