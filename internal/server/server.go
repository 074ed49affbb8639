package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"vocabstream-backend/internal/config"
	"vocabstream-backend/internal/prompt"
	"vocabstream-backend/internal/provider"
)

type Server struct {
	router *chi.Mux
	cfg    config.Config
	engine *prompt.Engine
	text   provider.TextGenerator
	speech provider.SpeechSynthesizer
}

func New(cfg config.Config, text provider.TextGenerator, speech provider.SpeechSynthesizer) (*Server, error) {
	style, err := prompt.LoadStyle(cfg.StyleFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load style spec: %w", err)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	s := &Server{
		router: r,
		cfg:    cfg,
		engine: prompt.NewEngine(style),
		text:   text,
		speech: speech,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/", s.handleHealth)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/voice", s.handleVoice)
	s.router.Post("/api/chat-legacy", s.handleChatLegacy)
}

func (s *Server) Router() http.Handler { return s.router }

// requestID tags every request with an id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		log.Printf("[http] %s %s rid=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
