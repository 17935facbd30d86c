package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string

	// LLM Configuration
	LLMProvider string // "gemini", "openai", "groq", "ollama" or "none"
	LLMModel    string // "gemini-1.5-flash", "gpt-4o-mini", "llama-3.3-70b-versatile"
	LLMAPIKey   string
	LLMTimeout  time.Duration

	// Upload ceiling in mebibytes, estimated from the base64 length before decode.
	MaxUploadMB int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "gemini" // default
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gemini-1.5-flash" // default model
	}

	// Get API key based on provider
	llmAPIKey := ""
	switch llmProvider {
	case "gemini":
		llmAPIKey = os.Getenv("GEMINI_API_KEY")
	case "openai":
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	}

	timeoutSeconds := intEnv("LLM_TIMEOUT_SECONDS", 120)
	maxUploadMB := intEnv("MAX_UPLOAD_MB", 100)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        port,
		LLMProvider: llmProvider,
		LLMModel:    llmModel,
		LLMAPIKey:   llmAPIKey,
		LLMTimeout:  time.Duration(timeoutSeconds) * time.Second,
		MaxUploadMB: int64(maxUploadMB),
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}
