// Package domain checks domain name availability and proposes alternatives
// for names that are taken.
package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/purell"
)

const SourceSimulation = "simulation"

var ErrInvalidDomain = errors.New("invalid domain")

// Availability is the answer of a single lookup.
type Availability struct {
	Available bool   `json:"available"`
	Source    string `json:"source"`
}

// Checker decides whether a normalized domain can be registered.
type Checker interface {
	CheckAvailability(ctx context.Context, domain string) (Availability, error)
}

type AvailabilityError struct {
	Domain string
	Source string
	Err    error
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("availability check failed for %s via %s: %v", e.Domain, e.Source, e.Err)
}

func (e *AvailabilityError) Unwrap() error { return e.Err }

// NormalizeDomain lowercases a domain and strips any scheme, "www." prefix,
// port, path and trailing dot.
func NormalizeDomain(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", fmt.Errorf("%w: domain cannot be empty", ErrInvalidDomain)
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	normalized, err := purell.NormalizeURLString(s,
		purell.FlagLowercaseScheme|purell.FlagLowercaseHost|purell.FlagRemoveDefaultPort|purell.FlagRemoveWWW)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDomain, raw)
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDomain, raw)
	}

	host := strings.TrimSuffix(u.Hostname(), ".")
	host = strings.TrimPrefix(host, "www.")
	if host == "" || !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.Contains(host, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidDomain, raw)
	}
	return host, nil
}

// wellKnownDomains are always reported as taken.
var wellKnownDomains = map[string]struct{}{
	"google.com":        {},
	"facebook.com":      {},
	"amazon.com":        {},
	"apple.com":         {},
	"microsoft.com":     {},
	"twitter.com":       {},
	"instagram.com":     {},
	"youtube.com":       {},
	"linkedin.com":      {},
	"github.com":        {},
	"stackoverflow.com": {},
	"reddit.com":        {},
	"wikipedia.org":     {},
	"netflix.com":       {},
	"spotify.com":       {},
}

// IsWellKnown reports whether domain is on the fixed list of taken domains.
func IsWellKnown(domain string) bool {
	_, ok := wellKnownDomains[strings.ToLower(domain)]
	return ok
}

const (
	comTakenProbability       = 0.7
	otherAvailableProbability = 0.6
)

// Simulator is a non-authoritative stand-in for a registrar lookup. Results
// for the same domain may differ between calls.
type Simulator struct {
	roll func() float64
}

func NewSimulator() *Simulator {
	return &Simulator{roll: rand.Float64}
}

// NewSimulatorWithRoll uses roll, which must return values in [0, 1), as the
// random source.
func NewSimulatorWithRoll(roll func() float64) *Simulator {
	return &Simulator{roll: roll}
}

func (s *Simulator) CheckAvailability(ctx context.Context, domain string) (Availability, error) {
	if err := ctx.Err(); err != nil {
		return Availability{}, err
	}
	name, err := NormalizeDomain(domain)
	if err != nil {
		return Availability{}, &AvailabilityError{Domain: domain, Source: SourceSimulation, Err: err}
	}

	result := Availability{Source: SourceSimulation}
	switch {
	case IsWellKnown(name):
		result.Available = false
	case strings.HasSuffix(name, ".com"):
		result.Available = s.roll() >= comTakenProbability
	default:
		result.Available = s.roll() < otherAvailableProbability
	}
	return result, nil
}
