package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"vocabstream-backend/internal/types"
)

// handleVoice renders text to speech: JSON {text, voice?} -> audio/mpeg.
// Errors are always whole JSON responses; a binary body is only written once
// the full audio payload is in hand.
func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	var req types.VoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{Error: "text is required"})
		return
	}
	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		voice = s.cfg.TTSVoice
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ProviderTimeout)
	defer cancel()
	audio, err := s.speech.SynthesizeSpeech(ctx, req.Text, voice)
	if err != nil {
		log.Printf("[voice] synthesis failed voice=%s: %v", voice, err)
		s.writeError(w, http.StatusInternalServerError, types.ErrorResponse{
			Error:   "speech synthesis failed",
			Details: err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
