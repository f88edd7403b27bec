package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxScoreBodyBytes bounds the /score request body
const maxScoreBodyBytes = 1 << 20

// RoleSummary is one entry of the /roles listing
type RoleSummary struct {
	Title      string `json:"title"`
	SkillCount int    `json:"skill_count"`
}

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	RawText string `json:"raw_text" validate:"required"`
	Role    string `json:"role" validate:"required"`
}

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Role    string                 `json:"role"`
	Profile types.CandidateProfile `json:"profile"`
	Result  types.MatchResult      `json:"result"`
	Summary string                 `json:"summary"`
}

// ResultsResponse represents the response for stored result listings
type ResultsResponse struct {
	Count   int                  `json:"count"`
	Results []db.ScreeningRecord `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListRoles lists catalog roles in catalog order
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	roles := s.catalog.Roles()
	summaries := make([]RoleSummary, 0, len(roles))
	for _, role := range roles {
		summaries = append(summaries, RoleSummary{Title: role.Title, SkillCount: len(role.RequiredSkills)})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": summaries})
}

// handleGetRole returns one role with its required skills
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	role, ok := s.catalog.Lookup(title)
	if !ok {
		s.writeError(w, &ErrRoleNotFound{Title: title})
		return
	}
	s.jsonResponse(w, http.StatusOK, role)
}

// handleScore parses generated profile text and scores it against a catalog role
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScoreBodyBytes)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	role, ok := s.catalog.Lookup(req.Role)
	if !ok {
		s.writeError(w, &ErrRoleNotFound{Title: req.Role})
		return
	}

	profile, result := screening.ScreenText(role, req.RawText)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Role:    role.Title,
		Profile: profile,
		Result:  result,
		Summary: ranking.Summary(result),
	})
}

// handleListResults lists stored results, best score first
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	records, err := s.store.ListScreenings(r.Context(), r.URL.Query().Get("role"), db.ClampLimit(limit))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.resultsResponse(w, records)
}

// handleRunResults returns the stored results of one screening run
func (s *Server) handleRunResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, ErrStoreUnavailable)
		return
	}

	raw := r.PathValue("id")
	runID, err := uuid.Parse(raw)
	if err != nil {
		s.writeError(w, &ErrInvalidRunID{Value: raw})
		return
	}

	records, err := s.store.GetRunResults(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.resultsResponse(w, records)
}

func (s *Server) resultsResponse(w http.ResponseWriter, records []db.ScreeningRecord) {
	if records == nil {
		records = []db.ScreeningRecord{}
	}
	s.jsonResponse(w, http.StatusOK, ResultsResponse{Count: len(records), Results: records})
}
