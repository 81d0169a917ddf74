package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SimilarRequest asks for AI-generated domains close to a taken one.
type SimilarRequest struct {
	Domain      string
	Description string
	Tone        string
	Style       string
	Provider    string
}

// SimilarFinder produces AI-sourced alternative domains.
type SimilarFinder interface {
	SimilarDomains(ctx context.Context, req SimilarRequest) ([]string, error)
}

// CheckRequest is one availability check. The optional product context
// enables AI-blended alternatives.
type CheckRequest struct {
	Domain      string
	Description string
	Tone        string
	Style       string
	Provider    string
}

type CheckResult struct {
	IsAvailable  bool
	Alternatives []string
	Source       string
}

// Service checks availability and proposes alternatives. It never fails.
type Service struct {
	checker Checker
	similar SimilarFinder
	logger  zerolog.Logger
}

// NewService creates an availability service. similar may be nil, which
// disables AI alternatives.
func NewService(checker Checker, similar SimilarFinder) *Service {
	return &Service{
		checker: checker,
		similar: similar,
		logger:  log.With().Str("component", "availability").Logger(),
	}
}

func unavailable() CheckResult {
	return CheckResult{IsAvailable: false, Alternatives: []string{}}
}

// Check answers whether req.Domain is available. Any failure degrades to
// "unavailable, no alternatives".
func (s *Service) Check(ctx context.Context, req CheckRequest) (result CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("domain", req.Domain).
				Str("panic", fmt.Sprint(r)).
				Msg("Domain availability check panicked")
			result = unavailable()
		}
	}()

	name, err := NormalizeDomain(req.Domain)
	if err != nil {
		s.logger.Warn().Err(err).Str("domain", req.Domain).Msg("Invalid domain for availability check")
		return unavailable()
	}

	availability, err := s.checker.CheckAvailability(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("domain", name).Msg("Domain availability check failed")
		return unavailable()
	}
	if availability.Available {
		return CheckResult{IsAvailable: true, Alternatives: []string{}, Source: availability.Source}
	}

	basic, err := GenerateAlternatives(name)
	if err != nil {
		s.logger.Warn().Err(err).Str("domain", name).Msg("Could not generate alternatives")
		basic = []string{}
	}
	result = CheckResult{IsAvailable: false, Alternatives: basic, Source: availability.Source}

	if s.similar == nil || strings.TrimSpace(req.Description) == "" {
		return result
	}

	ai, err := s.similar.SimilarDomains(ctx, SimilarRequest{
		Domain:      name,
		Description: req.Description,
		Tone:        req.Tone,
		Style:       req.Style,
		Provider:    req.Provider,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("domain", name).Msg("AI alternatives generation failed, using basic alternatives")
		return result
	}

	result.Alternatives = BlendAlternatives(name, basic, ai)
	return result
}
