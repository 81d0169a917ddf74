package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vit0-9/namegen_api/pkg/naming"
	"github.com/vit0-9/namegen_api/pkg/utils"
)

const (
	GeminiName         = "gemini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiConfig configures the Gemini generator.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	// ClientOptions are appended after the API key, e.g. to point the client
	// at another endpoint.
	ClientOptions []option.ClientOption
}

// GeminiGenerator asks Gemini for schema-constrained JSON output, so the
// response is already an array of suggestion objects.
type GeminiGenerator struct {
	cfg GeminiConfig

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiGenerator(cfg GeminiConfig) *GeminiGenerator {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.9
	}
	return &GeminiGenerator{cfg: cfg}
}

func (g *GeminiGenerator) Name() string { return GeminiName }

func (g *GeminiGenerator) Flavor() naming.Flavor { return naming.FlavorConcise }

// suggestionSchema mirrors the DomainSuggestion output contract.
func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {Type: genai.TypeString},
				"style": {
					Type:   genai.TypeString,
					Format: "enum",
					Enum: []string{"Descriptive", "Phrase-Based", "Humorous"},
				},
				"domain":    {Type: genai.TypeString},
				"rationale": {Type: genai.TypeString},
			},
			Required: []string{"name", "style", "domain", "rationale"},
		},
	}
}

func (g *GeminiGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	opts := append([]option.ClientOption{option.WithAPIKey(g.cfg.APIKey)}, g.cfg.ClientOptions...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	g.client = client
	return client, nil
}

// Generate performs one GenerateContent call and returns the JSON text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(g.cfg.APIKey) == "" {
		return "", newProviderError(GeminiName, ErrAuth, 0, errors.New("GEMINI_API_KEY is not set"))
	}

	client, err := g.getClient(ctx)
	if err != nil {
		return "", newProviderError(GeminiName, ErrUnavailable, 0, err)
	}

	model := client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = suggestionSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	var sb strings.Builder
	if resp != nil {
		for _, cand := range resp.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
				}
			}
			// Only the first candidate is requested.
			break
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", newProviderError(GeminiName, ErrUnavailable, 0, errors.New("empty response from Gemini API"))
	}
	return text, nil
}

// Close releases the underlying client, if one was created.
func (g *GeminiGenerator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}

// classifyGeminiError maps Gemini API failures onto the provider error kinds.
func classifyGeminiError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newProviderError(GeminiName, ErrUnavailable, 0, err)
	}

	code := 0
	var apiErr *apierror.APIError
	var gErr *googleapi.Error
	hasAPIErr := errors.As(err, &apiErr)
	hasGErr := errors.As(err, &gErr)
	switch {
	case hasAPIErr && apiErr.HTTPCode() > 0:
		code = apiErr.HTTPCode()
	case hasGErr:
		code = gErr.Code
	}

	var kind error
	if code != 0 {
		kind = kindForStatus(code)
	} else {
		kind = kindForGRPCCode(err)
	}

	// The API reports key problems as 400 INVALID_ARGUMENT with a reason.
	msg := err.Error()
	if strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "INVALID_API_KEY") || strings.Contains(msg, "API key not valid") {
		kind = ErrAuth
	}
	if strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		kind = ErrQuota
	}
	if code == 0 && kind == ErrQuota {
		code = http.StatusTooManyRequests
	}

	perr := newProviderError(GeminiName, kind, code, err)
	if kind == ErrQuota {
		perr.RetryAfter = geminiRetryAfter(apiErr, gErr)
	}
	return perr
}

// geminiRetryAfter prefers the RetryInfo error detail over the Retry-After
// header.
func geminiRetryAfter(apiErr *apierror.APIError, gErr *googleapi.Error) time.Duration {
	if apiErr != nil {
		if info := apiErr.Details().RetryInfo; info != nil {
			if d := info.GetRetryDelay().AsDuration(); d > 0 {
				return d
			}
		}
	}
	if gErr != nil {
		return utils.ParseRetryAfter(gErr.Header.Get("Retry-After"), time.Now())
	}
	return 0
}

func kindForGRPCCode(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return ErrUnavailable
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrAuth
	case codes.ResourceExhausted:
		return ErrQuota
	default:
		return ErrUnavailable
	}
}
