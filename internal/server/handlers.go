package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/chartframe/pkg/buildinfo"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/layout"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/store"
)

// layoutRequest is the body for POST /api/v1/layout.
type layoutRequest struct {
	// Spec is the TOML chart spec.
	Spec string `json:"spec"`

	// Width/Height override the spec's canvas section when non-zero.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Refresh bypasses the layout cache.
	Refresh bool `json:"refresh,omitempty"`
}

// layoutResponse is the body for POST /api/v1/layout.
type layoutResponse struct {
	Layout   layout.Layout `json:"layout"`
	SpecHash string        `json:"spec_hash"`
	Cached   bool          `json:"cached"`
}

// saveRequest is the body for POST /api/v1/layouts.
type saveRequest struct {
	Name string `json:"name"`
	Spec string `json:"spec"`
}

// errorResponse is the body for all error responses.
type errorResponse struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Spec == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "spec is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		SpecData: []byte(req.Spec),
		Width:    req.Width,
		Height:   req.Height,
		Refresh:  req.Refresh,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:   result.Layout,
		SpecHash: result.SpecHash,
		Cached:   result.CacheInfo.LayoutHit,
	})
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Name == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "name is required"))
		return
	}
	if req.Spec == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "spec is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		SpecData: []byte(req.Spec),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	doc := store.NewDocument(req.Name, req.Spec, &result.Layout)
	if err := s.store.Put(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout id"))
		return
	}

	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid layout id"))
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status via its error code.
func writeError(w http.ResponseWriter, err error) {
	var resp errorResponse
	resp.Error.Code = errors.GetCode(err)
	resp.Error.Message = errors.UserMessage(err)
	if resp.Error.Code == "" {
		resp.Error.Code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(resp.Error.Code), resp)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidAxis,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	case errors.ErrCodeBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
