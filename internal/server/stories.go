package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vlr-growth/internal/api"
	"vlr-growth/internal/constants"
	"vlr-growth/internal/service"

	"github.com/rs/zerolog"
)

// StoryServer exposes the story pipeline and thin upstream proxies as JSON.
// Responses reuse the upstream-style {status, data} envelope.
type StoryServer struct {
	storySvc *service.StoryService
	vlr      *api.Client
	logger   zerolog.Logger
}

func NewStoryServer(storySvc *service.StoryService, vlr *api.Client, logger zerolog.Logger) *StoryServer {
	return &StoryServer{storySvc: storySvc, vlr: vlr, logger: logger}
}

func (s *StoryServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/players", s.handleListPlayers)
	mux.HandleFunc("GET /api/players/{id}", s.handleGetPlayer)
	mux.HandleFunc("GET /api/players/{id}/story", s.handleGetStory)
	mux.HandleFunc("GET /api/players/{a}/compare/{b}", s.handleCompare)
	mux.HandleFunc("GET /api/teams", s.handleListTeams)
	mux.HandleFunc("GET /api/teams/{id}", s.handleGetTeam)
}

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorBody struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

func (s *StoryServer) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	if r.URL.Query().Get("all") == "true" {
		players, err := s.vlr.GetAllPlayers(r.Context(), country)
		if err != nil {
			s.writeUpstreamError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, envelope{Status: "OK", Data: players})
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", constants.DefaultPageLimit)
	resp, err := s.vlr.GetPlayers(r.Context(), page, limit, country)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *StoryServer) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vlr.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if resp.Data == nil {
		s.writeError(w, http.StatusNotFound, "player not found", false)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *StoryServer) handleGetStory(w http.ResponseWriter, r *http.Request) {
	result, err := s.storySvc.BuildStory(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			s.writeError(w, http.StatusNotFound, "player not found", false)
			return
		}
		s.writeUpstreamError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Status: "OK", Data: result})
}

func (s *StoryServer) handleCompare(w http.ResponseWriter, r *http.Request) {
	comparison, err := s.storySvc.ComparePlayers(r.Context(), r.PathValue("a"), r.PathValue("b"))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error(), true)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Status: "OK", Data: comparison})
}

func (s *StoryServer) handleListTeams(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	if r.URL.Query().Get("all") == "true" {
		teams, err := s.vlr.GetAllTeams(r.Context(), region)
		if err != nil {
			s.writeUpstreamError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, envelope{Status: "OK", Data: teams})
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", constants.DefaultPageLimit)
	resp, err := s.vlr.GetTeams(r.Context(), page, limit, region)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *StoryServer) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vlr.GetTeam(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if resp.Data == nil {
		s.writeError(w, http.StatusNotFound, "team not found", false)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeUpstreamError maps upstream faults to a retryable 502; anything else
// is a plain 500.
func (s *StoryServer) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("upstream request failed")

	var transportErr *api.TransportError
	var decodeErr *api.DecodeError
	if errors.As(err, &transportErr) || errors.As(err, &decodeErr) {
		s.writeError(w, http.StatusBadGateway, "upstream data source unavailable", true)
		return
	}
	s.writeError(w, http.StatusInternalServerError, "internal error", false)
}

func (s *StoryServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *StoryServer) writeError(w http.ResponseWriter, status int, msg string, retryable bool) {
	s.writeJSON(w, status, errorBody{Status: "error", Error: msg, Retryable: retryable})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
