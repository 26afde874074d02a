package site

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atorres/portfolio-api/pkg/logging"
)

// Handler serves the static portfolio content as JSON.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a site content handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListProjectsResponse is the response for listing projects.
type ListProjectsResponse struct {
	Projects []Project `json:"projects"`
	Count    int       `json:"count"`
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	all := Projects()
	writeJSON(w, http.StatusOK, ListProjectsResponse{Projects: all, Count: len(all)})
}

// GetProject handles GET /api/projects/{slug}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, ok := ProjectBySlug(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown project"})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ListSections handles GET /api/sections.
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": Sections(),
		"resume":   ResumeURL,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
