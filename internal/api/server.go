// Package api serves the entity state over HTTP. GET endpoints are public
// read-only observation; POST endpoints require a bearer token.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/heartbeat"
	"github.com/talgya/ember/internal/persistence"
	"github.com/talgya/ember/internal/render"
	"github.com/talgya/ember/internal/sched"
)

// Server serves the entity over HTTP.
type Server struct {
	Keeper   *sched.Keeper
	DB       *persistence.DB
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	interactLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/sections", s.handleSections)
	mux.HandleFunc("/api/v1/card", s.handleCard)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/diary", s.handleDiary)

	mux.HandleFunc("/api/v1/interact", s.adminOnly(RateLimitMiddleware(interactLimiter, s.handleInteract)))
	mux.HandleFunc("/api/v1/sense", s.adminOnly(s.handleSense))
	mux.HandleFunc("/api/v1/awaken", s.adminOnly(s.handleAwaken))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) checkBearerToken(r *http.Request) bool {
	if s.AdminKey == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+s.AdminKey
}

func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// handleStatus returns the headline vitals.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.Keeper.State()
	writeJSON(w, map[string]any{
		"name":        st.Seed.Name,
		"species":     entity.SpeciesName(st.Seed.Species),
		"growth_day":  st.Status.GrowthDay,
		"stage":       entity.StageName(st.Growth.Stage),
		"mood":        st.Status.Mood,
		"energy":      st.Status.Energy,
		"curiosity":   st.Status.Curiosity,
		"comfort":     st.Status.Comfort,
		"sulking":     st.Sulk.IsSulking,
		"language":    entity.LanguageName(st.Status.LanguageLevel),
		"perception":  entity.PerceptionName(st.Status.PerceptionLevel),
		"asymmetry":   entity.PhaseName(st.Asymmetry.Phase),
	})
}

// handleState returns the complete state snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Keeper.State())
}

// handleSections returns the rendered markdown sections.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, render.All(s.Keeper.State()))
}

// handleCard returns the YAML entity card.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	card, err := render.EntityCard(s.Keeper.State())
	if err != nil {
		http.Error(w, "render card", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	fmt.Fprint(w, card)
}

// handleEvents returns the recent event log.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeJSON(w, []persistence.Event{})
		return
	}
	events, err := s.DB.RecentEvents(100)
	if err != nil {
		http.Error(w, "load events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

// handleDiary returns recent diary lines as plain text, oldest first.
func (s *Server) handleDiary(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "no event log", http.StatusNotFound)
		return
	}
	events, err := s.DB.RecentEvents(200)
	if err != nil {
		http.Error(w, "load events", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == "heartbeat" {
			fmt.Fprintln(w, events[i].Detail)
		}
	}
}

type interactRequest struct {
	Message      string `json:"message"`
	EntityTaught bool   `json:"entity_taught,omitempty"`
}

// handleInteract applies a user interaction to the entity.
func (s *Server) handleInteract(w http.ResponseWriter, r *http.Request) {
	var req interactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	res := s.Keeper.Interact(heartbeatContext(req), time.Now(), summaryFor(req.Message))
	writeJSON(w, map[string]any{
		"mood":            res.Updated.Status.Mood,
		"comfort":         res.Updated.Status.Comfort,
		"sulking":         res.Updated.Sulk.IsSulking,
		"first_encounter": res.FirstEncounter != nil,
	})
}

// handleAwaken fires the one-way self-image recognition event.
func (s *Server) handleAwaken(w http.ResponseWriter, r *http.Request) {
	s.Keeper.Awaken()
	writeJSON(w, map[string]any{"awareness": true})
}

func heartbeatContext(req interactRequest) heartbeat.InteractionContext {
	return heartbeat.InteractionContext{
		UserInitiated: true,
		MessageLength: len(req.Message),
		EntityTaught:  req.EntityTaught,
	}
}

// summaryFor trims a message into a hot-memory summary line.
func summaryFor(message string) string {
	const maxLen = 120
	if len(message) > maxLen {
		return message[:maxLen] + "…"
	}
	if message == "" {
		return "(wordless interaction)"
	}
	return message
}
