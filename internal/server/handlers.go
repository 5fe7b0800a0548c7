package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aristath/brokerbook/internal/domain"
	"github.com/aristath/brokerbook/internal/fileio"
	"github.com/aristath/brokerbook/internal/repository"
	"github.com/aristath/brokerbook/internal/services"
)

// dataOperationFailed is the only message clients see for file and database failures.
const dataOperationFailed = "data operation failed"

type errorResponse struct {
	Error string `json:"error"`
}

type dataResponse struct {
	Status    string           `json:"status"`
	Operation string           `json:"operation"`
	Format    string           `json:"format,omitempty"`
	Mode      string           `json:"mode,omitempty"`
	Records   services.Summary `json:"records"`
}

func (s *Server) handleSaveData(w http.ResponseWriter, r *http.Request) {
	if err := s.dataset.SaveData(r.Context()); err != nil {
		s.writeServiceError(w, r, "save", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataResponse{Status: "ok", Operation: "save", Records: s.dataset.Summary()})
}

func (s *Server) handleLoadData(w http.ResponseWriter, r *http.Request) {
	if err := s.dataset.LoadData(r.Context()); err != nil {
		s.writeServiceError(w, r, "load", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataResponse{
		Status:    "ok",
		Operation: "load",
		Mode:      s.dataset.LoadMode(),
		Records:   s.dataset.Summary(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := s.dataset.Export(r.Context(), format); err != nil {
		s.writeServiceError(w, r, "export", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataResponse{Status: "ok", Operation: "export", Format: format, Records: s.dataset.Summary()})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := s.dataset.Import(r.Context(), format); err != nil {
		s.writeServiceError(w, r, "import", err)
		return
	}
	s.writeJSON(w, http.StatusOK, dataResponse{Status: "ok", Operation: "import", Format: format, Records: s.dataset.Summary()})
}

// writeServiceError maps dispatch errors to responses. File and database
// failures are checked first: a text read that fails validation is still a
// file error.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, fileio.ErrFileIO), errors.Is(err, repository.ErrDatabase):
		s.log.Error().
			Err(err).
			Str("operation", op).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Data operation failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: dataOperationFailed})
	case errors.Is(err, services.ErrUnknownFormat), errors.Is(err, domain.ErrInvalidData):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.Error().Err(err).Str("operation", op).Msg("Unexpected error")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: dataOperationFailed})
	}
}

// decodeJSON reads a request body into v, answering 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
