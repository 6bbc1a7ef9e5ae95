// Package server exposes the example catalog and the template engine over
// HTTP as a small JSON API. All state lives in the service layer; handlers
// are thin translations between HTTP and service calls.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/api"
	"github.com/promptdeck/promptdeck/internal/errors"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/renderer"
	"github.com/promptdeck/promptdeck/internal/service"
	"github.com/promptdeck/promptdeck/internal/validation"
)

// Server provides HTTP endpoints for the example catalog
type Server struct {
	service *service.Service
	port    int
	errors  *errors.HTTPErrorHandler
}

// NewServer creates a new catalog server instance
func NewServer(svc *service.Service, port int) *Server {
	return &Server{
		service: svc,
		port:    port,
		errors:  errors.NewHTTPErrorHandler(true),
	}
}

// Handler returns the route table for the catalog API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/examples", s.withCORS(s.handleExamples))
	mux.HandleFunc("/examples/", s.withCORS(s.handleExample))
	mux.HandleFunc("/search", s.withCORS(s.handleSearch))
	mux.HandleFunc("/categories", s.withCORS(s.handleCategories))
	mux.HandleFunc("/render", s.withCORS(s.handleRender))
	mux.HandleFunc("/score", s.withCORS(s.handleScore))
	mux.HandleFunc("/variables", s.withCORS(s.handleVariables))
	mux.HandleFunc("/health", s.withCORS(s.handleHealth))
	mux.HandleFunc("/openapi.json", s.withCORS(api.HandleOpenAPISpec))
	mux.HandleFunc("/api", s.withCORS(api.HandleDocs))
	return mux
}

// Start begins serving HTTP requests
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Catalog server starting on http://localhost%s", addr)
	log.Printf("API endpoints available:")
	log.Printf("  http://localhost%s/examples - list examples", addr)
	log.Printf("  http://localhost%s/examples/{slug} - get one example", addr)
	log.Printf("  http://localhost%s/search?q=few-shot - search examples", addr)
	log.Printf("  http://localhost%s/render - render a template (POST)", addr)
	log.Printf("  http://localhost%s/score - score a template (POST)", addr)
	log.Printf("  http://localhost%s/api - API documentation", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// withCORS enables cross-origin requests for browser playgrounds
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			return
		}

		next(w, r)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "promptdeck-server",
	})
}

// handleExamples lists catalog examples with optional filters
func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodGet); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	category := r.URL.Query().Get("category")
	difficulty := r.URL.Query().Get("difficulty")
	limitStr := r.URL.Query().Get("limit")

	var examples []*models.Example
	var err error

	switch {
	case category != "":
		examples, err = s.service.FilterByCategory(category)
	case difficulty != "":
		examples, err = s.service.FilterByDifficulty(difficulty)
	default:
		examples, err = s.service.ListExamples()
	}
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	// Apply limit if specified
	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(examples) {
			examples = examples[:limit]
		}
	}

	s.writeJSON(w, map[string]interface{}{
		"examples": exampleSummaries(examples),
		"count":    len(examples),
	})
}

// handleExample returns one example by slug, with variables and score included
func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodGet); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/examples/")
	if slug == "" || strings.Contains(slug, "/") {
		s.errors.WriteHTTPError(w, errors.NewAppError(errors.ErrCodeInvalidInput, "expected /examples/{slug}"))
		return
	}

	example, err := s.service.GetExample(slug)
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"example":   exampleDetail(example),
		"variables": renderer.ExtractVariables(example.Template),
		"score":     analyzer.ScorePrompt(example.Template),
	})
}

// handleSearch performs fuzzy text search across the catalog
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodGet); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		s.errors.WriteHTTPError(w, errors.NewAppError(errors.ErrCodeMissingField, "query parameter 'q' is required"))
		return
	}

	examples, err := s.service.SearchExamples(query)
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"examples": exampleSummaries(examples),
		"count":    len(examples),
		"query":    query,
	})
}

// handleCategories lists the distinct catalog categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodGet); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	categories, err := s.service.ListCategories()
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	s.writeJSON(w, map[string]interface{}{"categories": categories})
}

// renderRequest is the body of POST /render. Either a literal template or a
// catalog slug must be provided; bindings are an ordered array so that
// substitution order is under the caller's control.
type renderRequest struct {
	Template string           `json:"template"`
	Slug     string           `json:"slug"`
	Bindings *models.Bindings `json:"bindings"`
}

// handleRender substitutes variables into a template
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodPost); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	var req renderRequest
	if err := validation.DecodeJSONBody(r, &req); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	template, err := s.resolveTemplate(req.Template, req.Slug)
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	bindings := req.Bindings
	if bindings == nil {
		bindings = models.NewBindings()
	}

	s.writeJSON(w, map[string]interface{}{
		"rendered":  renderer.RenderTemplate(template, bindings),
		"variables": renderer.ExtractVariables(template),
	})
}

// scoreRequest is the body of POST /score
type scoreRequest struct {
	Template string `json:"template"`
	Slug     string `json:"slug"`
}

// handleScore scores a template against the quality heuristics
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodPost); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	var req scoreRequest
	if err := validation.DecodeJSONBody(r, &req); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	template, err := s.resolveTemplate(req.Template, req.Slug)
	if err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	s.writeJSON(w, analyzer.ScorePrompt(template))
}

// variablesRequest is the body of POST /variables
type variablesRequest struct {
	Template string `json:"template"`
}

// handleVariables extracts placeholder names from a template
func (s *Server) handleVariables(w http.ResponseWriter, r *http.Request) {
	if err := validation.RequireMethod(r, http.MethodPost); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	var req variablesRequest
	if err := validation.DecodeJSONBody(r, &req); err != nil {
		s.errors.WriteHTTPError(w, err)
		return
	}

	variables := renderer.ExtractVariables(req.Template)
	s.writeJSON(w, map[string]interface{}{"variables": variables})
}

// resolveTemplate returns the literal template, or looks one up by slug
func (s *Server) resolveTemplate(template, slug string) (string, error) {
	if template != "" {
		return template, nil
	}
	if slug == "" {
		return "", errors.NewAppError(errors.ErrCodeMissingField, "either 'template' or 'slug' is required")
	}
	example, err := s.service.GetExample(slug)
	if err != nil {
		return "", err
	}
	return example.Template, nil
}

// exampleSummary is the listing shape for an example
type exampleSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
}

// exampleFull is the detail shape for an example
type exampleFull struct {
	exampleSummary
	Template  string   `json:"template"`
	Body      string   `json:"body"`
	Pitfalls  []string `json:"pitfalls,omitempty"`
	Checklist []string `json:"checklist,omitempty"`
}

func exampleSummaries(examples []*models.Example) []exampleSummary {
	summaries := make([]exampleSummary, 0, len(examples))
	for _, e := range examples {
		summaries = append(summaries, exampleSummary{
			Slug:        e.Slug,
			Title:       e.Name,
			Description: e.Summary,
			Category:    e.Category,
			Difficulty:  e.Difficulty,
		})
	}
	return summaries
}

func exampleDetail(e *models.Example) exampleFull {
	return exampleFull{
		exampleSummary: exampleSummary{
			Slug:        e.Slug,
			Title:       e.Name,
			Description: e.Summary,
			Category:    e.Category,
			Difficulty:  e.Difficulty,
		},
		Template:  e.Template,
		Body:      e.Body,
		Pitfalls:  e.Pitfalls,
		Checklist: e.Checklist,
	}
}

// writeJSON writes a JSON response with status 200
func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
