package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	OpenAIAPIKey  string
	AllowedOrigin string
	Model         string
	TTSModel      string
	TTSVoice      string
	// Upper bound on any single provider call; the SDK's own defaults are
	// not relied on.
	ProviderTimeout time.Duration
	// When true, reject level values outside the CEFR A1..C2 set instead of
	// passing them through to the prompt.
	ValidateCEFRLevel bool
	// Optional YAML file overriding the built-in generation style.
	StyleFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:              getEnvDefault("PORT", "8080"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AllowedOrigin:     getEnvDefault("ALLOWED_ORIGIN", "*"),
		Model:             getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		TTSModel:          getEnvDefault("OPENAI_TTS_MODEL", "tts-1"),
		TTSVoice:          getEnvDefault("TTS_VOICE", "alloy"),
		ProviderTimeout:   time.Duration(getEnvIntDefault("OPENAI_TIMEOUT_SECONDS", 30)) * time.Second,
		ValidateCEFRLevel: getEnvBoolDefault("VALIDATE_CEFR_LEVEL", false),
		StyleFile:         getEnvDefault("STYLE_FILE", "prompts/style.yaml"),
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("warning: OPENAI_API_KEY is not set; API calls will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvBoolDefault(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}
