package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"vocabstream-backend/internal/prompt"
	"vocabstream-backend/internal/types"
)

const unknownModeMessage = "Unknown mode. Use 'casual' or 'lesson'."

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "message is required"})
		return
	}

	norm, err := prompt.Normalize(req, prompt.Options{ValidateLevel: s.cfg.ValidateCEFRLevel})
	if err != nil {
		var unknown *prompt.UnknownModeError
		if errors.As(err, &unknown) {
			s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: unknownModeMessage})
			return
		}
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	built := s.engine.Build(norm)

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ProviderTimeout)
	defer cancel()
	reply, err := s.text.GenerateText(ctx, built.SystemPrompt, norm.Message, built.MaxTokens, s.engine.Style().Temperature)
	if err != nil {
		log.Printf("[chat] generation failed mode=%s: %v", norm.Mode, err)
		s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
			Error:   "text generation failed",
			Mode:    norm.Mode,
			Details: err.Error(),
		})
		return
	}

	resp := types.ChatResponse{Reply: reply, Mode: norm.Mode}
	if norm.Mode == prompt.ModeLesson {
		resp.CurrentComponent = norm.ComponentName
		if built.HasTiming {
			remaining := built.RemainingSeconds
			resp.TimeRemaining = &remaining
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleChatLegacy serves pre-existing callers of the original one-prompt
// endpoint. It keeps the original contract: HTTP 200 with either {reply} or
// {error}.
func (s *Server) handleChatLegacy(w http.ResponseWriter, r *http.Request) {
	var req types.LegacyChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "message is required"})
		return
	}
	level := strings.TrimSpace(req.Level)
	if level == "" {
		level = "A1"
	}
	specialty := strings.TrimSpace(req.Specialty)
	if specialty == "" {
		specialty = "General"
	}
	systemPrompt := "You are an English conversation partner focusing on " + specialty + " at level " + level + "."

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ProviderTimeout)
	defer cancel()
	reply, err := s.text.GenerateText(ctx, systemPrompt, req.Message, s.engine.Style().CasualMaxTokens, s.engine.Style().Temperature)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Printf("[chat-legacy] generation failed: %v", err)
		_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(types.LegacyChatResponse{Reply: reply})
}

func (s *Server) writeError(w http.ResponseWriter, code int, resp types.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
