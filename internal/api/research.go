package api

import (
	"fmt"
	"net/http"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

// researchRequest is the POST /api/v1/research payload.
type researchRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode,omitempty"`
}

// researchResponse wraps the synthesized report.
type researchResponse struct {
	Query  string `json:"query"`
	Mode   string `json:"mode"`
	Report string `json:"report"`
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(s, w, http.StatusBadRequest, "MALFORMED_BODY", err.Error())
		return
	}

	er, err := validateResearch(req)
	if err != nil {
		respondError(s, w, http.StatusBadRequest, core.GetCode(err), err.Error())
		return
	}

	report := s.researcher.Run(r.Context(), er.Query, er.Mode)
	respondJSON(s, w, http.StatusOK, researchResponse{
		Query:  er.Query,
		Mode:   string(er.Mode),
		Report: report,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	statuses := s.researcher.Status()
	respondJSON(s, w, http.StatusOK, map[string]any{
		"workers": statuses,
		"count":   len(statuses),
	})
}

func (s *Server) handleStatusReport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.researcher.StatusReport()))
}

// validateResearch normalizes the request into an execution request.
func validateResearch(req researchRequest) (core.ExecutionRequest, error) {
	if req.Query == "" {
		return core.ExecutionRequest{}, core.ErrValidation(core.CodeEmptyQuery, "query must not be empty")
	}
	if len(req.Query) > core.MaxQueryLength {
		return core.ExecutionRequest{}, core.ErrValidation(core.CodeEmptyQuery,
			fmt.Sprintf("query exceeds %d bytes", core.MaxQueryLength))
	}
	if req.Mode != "" && !core.RunMode(req.Mode).Valid() {
		return core.ExecutionRequest{}, core.ErrValidation(core.CodeInvalidMode,
			fmt.Sprintf("unknown mode %q (expected standard or variation)", req.Mode))
	}

	er := core.ExecutionRequest{Query: req.Query, Mode: core.RunMode(req.Mode)}
	return er.Normalize(), nil
}
