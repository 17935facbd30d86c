package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/genai"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderOllama Provider = "ollama"
	ProviderNone   Provider = "none"
)

// Service is a thin client over a chat-completion style LLM API. Every call is a
// fresh, uncorrelated exchange: no conversation state is kept between calls.
type Service struct {
	provider Provider
	apiKey   string
	model    string
	timeout  time.Duration
}

func NewService(provider, apiKey, model string, timeout time.Duration) *Service {
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		timeout:  timeout,
	}
}

// Generate sends a single prompt under the given system message and returns the raw
// text reply. The reply may contain markdown fences or prose around the JSON the
// prompt asked for; callers sanitize and parse it themselves.
func (s *Service) Generate(ctx context.Context, systemMsg, prompt string) (string, error) {
	if s.provider == ProviderNone {
		return "", fmt.Errorf("LLM provider not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch s.provider {
	case ProviderGemini:
		return s.callGemini(ctx, systemMsg, prompt)
	case ProviderOpenAI:
		return s.callChatCompletions(ctx, "https://api.openai.com/v1/chat/completions", systemMsg, prompt)
	case ProviderGroq:
		return s.callChatCompletions(ctx, "https://api.groq.com/openai/v1/chat/completions", systemMsg, prompt)
	case ProviderOllama:
		return s.callOllama(ctx, systemMsg, prompt)
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) callGemini(ctx context.Context, systemMsg, prompt string) (string, error) {
	// A new client per call keeps each exchange in its own session scope.
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemMsg, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	reply := resp.Text()
	log.Printf("[DEBUG] Gemini response length: %d characters", len(reply))
	return reply, nil
}

// callChatCompletions covers OpenAI and Groq, which share the same wire format.
func (s *Service) callChatCompletions(ctx context.Context, url, systemMsg, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": systemMsg,
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("LLM error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, systemMsg, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"system": systemMsg,
		"prompt": prompt,
		"stream": false,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", "http://localhost:11434/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[DEBUG] Ollama request took: %v", time.Since(startTime))

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
