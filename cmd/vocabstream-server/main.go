package main

import (
	"fmt"
	"log"
	"net/http"

	"vocabstream-backend/internal/config"
	"vocabstream-backend/internal/provider"
	"vocabstream-backend/internal/server"
)

func main() {
	cfg := config.Load()
	ai := provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, cfg.TTSModel)
	s, err := server.New(cfg, ai, ai)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	addr := ":" + cfg.Port
	fmt.Printf("vocabstream server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
