package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/namegen_api/models"
	"github.com/vit0-9/namegen_api/pkg/utils/domain"
)

type AvailabilityChecker interface {
	Check(ctx context.Context, req domain.CheckRequest) domain.CheckResult
}

// DomainHandlers serves domain availability checks.
type DomainHandlers struct {
	checker AvailabilityChecker
}

func NewDomainHandlers(checker AvailabilityChecker) *DomainHandlers {
	return &DomainHandlers{checker: checker}
}

// CheckDomainHandler godoc
// @Summary      Check domain availability
// @Description  Reports whether a domain looks available. The default backend is a non-authoritative simulation, so repeated checks of the same domain may differ. Taken domains come with up to 8 alternatives; passing the product description blends in AI-generated alternatives.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        request body models.CheckDomainRequest true "Domain to check"
// @Success      200 {object} models.CheckDomainResponse
// @Failure      400 {object} models.ErrorResponse "Invalid request"
// @Failure      500 {object} models.ErrorResponse "Unexpected failure"
// @Router       /check-domain [post]
func (h *DomainHandlers) CheckDomainHandler(c *gin.Context) {
	var req models.CheckDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Details: bindingErrorDetails(err),
		})
		return
	}

	result := h.checker.Check(c.Request.Context(), domain.CheckRequest{
		Domain:      req.Domain,
		Description: req.ProductDescription,
		Tone:        req.TonePreference,
		Style:       req.StylePreference,
		Provider:    req.AIModel,
	})

	alternatives := result.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	c.JSON(http.StatusOK, models.CheckDomainResponse{
		IsAvailable:  result.IsAvailable,
		Alternatives: alternatives,
	})
}
