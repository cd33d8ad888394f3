// Package server exposes the correction API over HTTP.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	spell "speller/pkg"

	"speller/internal/corrector"
)

type Server struct {
	corrector *corrector.SpellCorrector
}

func New(sc *corrector.SpellCorrector) *Server {
	return &Server{corrector: sc}
}

// Handler returns the API routes:
//
//	POST /api/v1/correct {"text"}          corrected text with changes
//	POST /api/v1/suggest {"word","limit"}  ranked suggestions
//	GET  /api/v1/health                    status and model size
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/correct", s.handleCorrect)
	mux.HandleFunc("/api/v1/suggest", s.handleSuggest)
	mux.HandleFunc("/api/v1/health", s.handleHealth)
	return mux
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	writeJSON(w, http.StatusOK, s.corrector.CorrectText(req.Text))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word  string `json:"word"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	suggestions := s.corrector.Suggestions(req.Word)
	if req.Limit > 0 && len(suggestions) > req.Limit {
		suggestions = suggestions[:req.Limit]
	}
	if suggestions == nil {
		suggestions = []spell.Suggestion{}
	}
	writeJSON(w, http.StatusOK, struct {
		Word        string             `json:"word"`
		Suggestions []spell.Suggestion `json:"suggestions"`
	}{Word: req.Word, Suggestions: suggestions})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"words":  s.corrector.KnownWords(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
