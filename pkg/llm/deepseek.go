package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vit0-9/namegen_api/pkg/naming"
	"github.com/vit0-9/namegen_api/pkg/utils"
)

const (
	DeepSeekName           = "deepseek"
	DefaultDeepSeekModel   = "deepseek-reasoner"
	DefaultDeepSeekBaseURL = "https://api.deepseek.com"

	maxResponseBytes = 2_000_000
)

// DeepSeekConfig configures the DeepSeek generator. BaseURL may point at any
// OpenAI-compatible endpoint.
type DeepSeekConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

// DeepSeekGenerator talks to a reasoning model that answers in free-form
// text. The JSON array is extracted later by the suggestion validator.
type DeepSeekGenerator struct {
	client   *http.Client
	apiKey   string
	model    string
	endpoint string
	temp     float64
	maxToks  int
	now      func() time.Time
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role             string `json:"role"`
			Content          string `json:"content"`
			ReasoningContent string `json:"reasoning_content,omitempty"`
		} `json:"message"`
	} `json:"choices"`
}

func NewDeepSeekGenerator(cfg DeepSeekConfig) *DeepSeekGenerator {
	endpoint := strings.TrimSpace(cfg.BaseURL)
	if endpoint == "" {
		endpoint = DefaultDeepSeekBaseURL
	}
	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasSuffix(endpoint, "/chat/completions") {
		if strings.HasSuffix(endpoint, "/v1") {
			endpoint += "/chat/completions"
		} else {
			endpoint += "/v1/chat/completions"
		}
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultDeepSeekModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	client := cfg.HTTPClient
	if client == nil {
		client = utils.NewHTTPClient(0)
	}

	return &DeepSeekGenerator{
		client:   client,
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		temp:     cfg.Temperature,
		maxToks:  cfg.MaxTokens,
		now:      time.Now,
	}
}

func (d *DeepSeekGenerator) Name() string { return DeepSeekName }

func (d *DeepSeekGenerator) Flavor() naming.Flavor { return naming.FlavorDetailed }

// Generate performs one chat completion and returns the message content.
func (d *DeepSeekGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(d.apiKey) == "" {
		return "", newProviderError(DeepSeekName, ErrAuth, 0, errors.New("DEEPSEEK_API_KEY is not set"))
	}

	body, err := json.Marshal(chatRequest{
		Model:       d.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: d.temp,
		MaxTokens:   d.maxToks,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", d.endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", newProviderError(DeepSeekName, ErrUnavailable, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", newProviderError(DeepSeekName, ErrUnavailable, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := newProviderError(DeepSeekName, kindForStatus(resp.StatusCode), resp.StatusCode,
			fmt.Errorf("chat request failed: %s", strings.TrimSpace(string(raw))))
		perr.RetryAfter = utils.ParseRetryAfter(resp.Header.Get("Retry-After"), d.now())
		return "", perr
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", newProviderError(DeepSeekName, ErrUnavailable, resp.StatusCode, fmt.Errorf("failed to decode chat response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", newProviderError(DeepSeekName, ErrUnavailable, resp.StatusCode, errors.New("invalid response structure: no choices"))
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", newProviderError(DeepSeekName, ErrUnavailable, resp.StatusCode, errors.New("empty message content"))
	}
	return content, nil
}
