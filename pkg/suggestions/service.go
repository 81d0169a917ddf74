package suggestions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vit0-9/namegen_api/pkg/llm"
	"github.com/vit0-9/namegen_api/pkg/naming"
	"github.com/vit0-9/namegen_api/pkg/utils/domain"
)

// Request is one domain generation request.
type Request struct {
	Description string
	Tone        string
	Style       string
	// Provider names the generator; empty selects the registry default.
	Provider string
}

// Options tunes the pipeline.
type Options struct {
	// Timeout bounds each provider call. Zero means 30 seconds.
	Timeout time.Duration
	// FallbackEnabled serves demo data when generation fails. When false,
	// the provider error is returned to the caller instead.
	FallbackEnabled bool
}

// Service runs prompt building, generation, validation and fallback.
type Service struct {
	registry *llm.Registry
	fallback *Fallback
	opts     Options
	logger   zerolog.Logger
}

func NewService(registry *llm.Registry, fallback *Fallback, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Service{
		registry: registry,
		fallback: fallback,
		opts:     opts,
		logger:   log.With().Str("component", "suggestions").Logger(),
	}
}

// Generate produces suggestions for req. Generation failures are recovered
// with demo data unless fallback is disabled.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	result, provider, err := s.generate(ctx, req)
	if err == nil {
		return result, nil
	}

	s.logger.Warn().
		Err(err).
		Str("provider", provider).
		Bool("fallback", s.opts.FallbackEnabled).
		Msg("Domain generation failed")

	if !s.opts.FallbackEnabled {
		return nil, err
	}
	return s.fallback.Suggestions(provider, fallbackReason(err)), nil
}

// SimilarDomains asks the generator for domains close to an unavailable one.
// Demo data is never returned here; any failure is an error.
func (s *Service) SimilarDomains(ctx context.Context, req domain.SimilarRequest) ([]string, error) {
	result, _, err := s.generate(ctx, Request{
		Description: naming.BuildSimilarDescription(req.Domain, req.Description),
		Tone:        req.Tone,
		Style:       req.Style,
		Provider:    req.Provider,
	})
	if err != nil {
		return nil, err
	}

	domains := make([]string, 0, len(result.Domains))
	for _, d := range result.Domains {
		domains = append(domains, d.Domain)
	}
	return domains, nil
}

func (s *Service) generate(ctx context.Context, req Request) (*Result, string, error) {
	gen, honored, err := s.registry.Resolve(req.Provider)
	if err != nil {
		return nil, req.Provider, fmt.Errorf("resolve provider %q: %w", req.Provider, err)
	}
	if !honored {
		s.logger.Warn().
			Str("requested", req.Provider).
			Str("provider", gen.Name()).
			Msg("Unknown AI model requested, using default provider")
	}

	prompt, err := naming.BuildPrompt(gen.Flavor(), req.Description, naming.Preferences{
		Tone:  req.Tone,
		Style: req.Style,
	})
	if err != nil {
		return nil, gen.Name(), err
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	raw, err := gen.Generate(callCtx, prompt)
	if err != nil {
		return nil, gen.Name(), err
	}

	domains, err := Extract(raw)
	if err != nil {
		return nil, gen.Name(), fmt.Errorf("%s: %w", gen.Name(), err)
	}

	s.logger.Debug().
		Str("provider", gen.Name()).
		Int("suggestions", len(domains)).
		Dur("elapsed", time.Since(start)).
		Msg("Domain suggestions generated")

	return &Result{Domains: domains, Provider: gen.Name()}, gen.Name(), nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, llm.ErrAuth):
		return "The AI provider is not configured or rejected its credentials"
	case errors.Is(err, llm.ErrQuota):
		return "The AI provider usage limit was reached"
	case errors.Is(err, ErrParse), errors.Is(err, ErrValidation):
		return "The AI response could not be used"
	case errors.Is(err, context.DeadlineExceeded):
		return "The AI provider took too long to respond"
	default:
		return "The AI provider is temporarily unavailable"
	}
}
