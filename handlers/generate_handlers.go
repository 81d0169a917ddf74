package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vit0-9/namegen_api/models"
	"github.com/vit0-9/namegen_api/pkg/llm"
	"github.com/vit0-9/namegen_api/pkg/store"
	"github.com/vit0-9/namegen_api/pkg/suggestions"
)

// defaultRetryAfter is sent with 429 responses when the provider gave no hint.
const defaultRetryAfter = 60

type SuggestionGenerator interface {
	Generate(ctx context.Context, req suggestions.Request) (*suggestions.Result, error)
}

// GenerationHandlers serves domain name generation.
type GenerationHandlers struct {
	generator SuggestionGenerator
	store     store.GenerationStore
}

func NewGenerationHandlers(generator SuggestionGenerator, generations store.GenerationStore) *GenerationHandlers {
	return &GenerationHandlers{generator: generator, store: generations}
}

// GenerateDomainsHandler godoc
// @Summary      Generate domain name suggestions
// @Description  Builds a naming prompt from the product description and preferences, asks the selected AI provider for suggestions and validates them. When the provider fails, demo suggestions are returned with demo=true.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        request body models.GenerateDomainsRequest true "Product description and preferences"
// @Success      200 {object} models.GenerateDomainsResponse
// @Failure      400 {object} models.ErrorResponse "Invalid request"
// @Failure      401 {object} models.ErrorResponse "Provider credentials missing or rejected"
// @Failure      429 {object} models.ErrorResponse "Provider quota exceeded"
// @Failure      500 {object} models.ErrorResponse "Generation failed"
// @Router       /generate-domains [post]
func (h *GenerationHandlers) GenerateDomainsHandler(c *gin.Context) {
	var req models.GenerateDomainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Details: bindingErrorDetails(err),
		})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), suggestions.Request{
		Description: req.ProductDescription,
		Tone:        req.TonePreference,
		Style:       req.StylePreference,
		Provider:    req.AIModel,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	h.record(c, req.ProductDescription, result)
	// Names and rationales are returned as written, e.g. "Salt & Pepper".
	c.PureJSON(http.StatusOK, models.NewGenerateDomainsResponse(result))
}

func (h *GenerationHandlers) record(c *gin.Context, description string, result *suggestions.Result) {
	if h.store == nil {
		return
	}
	encoded, err := json.Marshal(result.Domains)
	if err == nil {
		_, err = h.store.Append(store.Generation{
			ProductDescription: description,
			GeneratedDomains:   string(encoded),
			Provider:           result.Provider,
			Demo:               result.Demo,
		})
	}
	if err != nil {
		log.Warn().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("Failed to record generation")
	}
}

// writeGenerationError maps an unrecovered generation error to a response.
func writeGenerationError(c *gin.Context, err error) {
	log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("Error generating domains")

	switch {
	case errors.Is(err, llm.ErrQuota):
		retryAfter := defaultRetryAfter
		if hint, ok := llm.RetryAfterHint(err); ok {
			retryAfter = int(math.Ceil(hint.Seconds()))
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:      "API usage limit reached. Please try again in a few minutes.",
			RetryAfter: retryAfter,
		})
	case errors.Is(err, llm.ErrAuth):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "API configuration issue. Please contact support.",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Unable to generate domain suggestions right now. Please try again in a moment.",
		})
	}
}
