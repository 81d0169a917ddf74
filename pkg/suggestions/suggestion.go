// Package suggestions turns provider output into validated domain name
// suggestions and falls back to demo data when generation fails.
package suggestions

// Naming framework styles a suggestion may be tagged with.
const (
	StyleDescriptive = "Descriptive"
	StylePhraseBased = "Phrase-Based"
	StyleHumorous    = "Humorous"
)

// Styles lists every accepted suggestion style.
var Styles = []string{StyleDescriptive, StylePhraseBased, StyleHumorous}

// DomainSuggestion is a single generated name with its domain.
type DomainSuggestion struct {
	Name         string   `json:"name" yaml:"name"`
	Style        string   `json:"style" yaml:"style"`
	Domain       string   `json:"domain" yaml:"domain"`
	Rationale    string   `json:"rationale" yaml:"rationale"`
	IsAvailable  *bool    `json:"isAvailable,omitempty" yaml:"-"`
	Alternatives []string `json:"alternatives,omitempty" yaml:"-"`
}

// ValidStyle reports whether style is one of the three naming frameworks.
func ValidStyle(style string) bool {
	for _, s := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

// Result is the outcome of one generation request.
type Result struct {
	Domains []DomainSuggestion
	// Provider is the generator that produced Domains, or whose failure
	// produced the demo set.
	Provider string
	Demo     bool
	Message  string
}
