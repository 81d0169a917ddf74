package suggestions

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackSetSize is the number of suggestions in every demo set.
const FallbackSetSize = 5

const defaultSetName = "default"

//go:embed fallback_data.yaml
var fallbackData []byte

type fallbackFile struct {
	Version int                           `yaml:"version"`
	Sets    map[string][]DomainSuggestion `yaml:"sets"`
}

// Fallback serves canned demo suggestions, tagged per provider.
type Fallback struct {
	version int
	sets    map[string][]DomainSuggestion
}

// NewFallback loads the embedded demo data.
func NewFallback() (*Fallback, error) {
	return ParseFallback(fallbackData)
}

// ParseFallback loads demo data from YAML. Every set must hold exactly
// FallbackSetSize valid suggestions and a "default" set is required.
func ParseFallback(data []byte) (*Fallback, error) {
	var file fallbackFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode fallback data: %w", err)
	}
	if _, ok := file.Sets[defaultSetName]; !ok {
		return nil, fmt.Errorf("fallback data has no %q set", defaultSetName)
	}

	sets := make(map[string][]DomainSuggestion, len(file.Sets))
	for name, set := range file.Sets {
		if len(set) != FallbackSetSize {
			return nil, fmt.Errorf("fallback set %q has %d suggestions, want %d", name, len(set), FallbackSetSize)
		}
		valid, err := ValidateSuggestions(set)
		if err != nil || len(valid) != len(set) {
			return nil, fmt.Errorf("fallback set %q contains invalid suggestions", name)
		}
		sets[strings.ToLower(name)] = valid
	}

	return &Fallback{version: file.Version, sets: sets}, nil
}

// Version returns the data version declared in the YAML file.
func (f *Fallback) Version() int {
	return f.version
}

// Suggestions returns the demo set for provider, or the default set when the
// provider has none. It never fails.
func (f *Fallback) Suggestions(provider, reason string) *Result {
	set, ok := f.sets[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		set = f.sets[defaultSetName]
	}

	domains := make([]DomainSuggestion, len(set))
	copy(domains, set)

	return &Result{
		Domains:  domains,
		Provider: provider,
		Demo:     true,
		Message:  fallbackMessage(reason),
	}
}

func fallbackMessage(reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "AI generation is unavailable right now"
	}
	return reason + ". Showing demo suggestions instead."
}
