// Package naming builds the instruction prompts sent to the generation providers.
package naming

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Flavor selects the prompt wording. The output-format contract is the same
// for every flavor so the response validator stays provider-agnostic.
type Flavor string

const (
	// FlavorConcise suits providers that enforce a response schema themselves.
	FlavorConcise Flavor = "concise"
	// FlavorDetailed suits reasoning models that answer in free-form text.
	FlavorDetailed Flavor = "detailed"
)

var (
	promptTemplates *template.Template
	templatesOnce   sync.Once
	templatesErr    error
)

func loadTemplates() {
	templatesOnce.Do(func() {
		promptTemplates, templatesErr = template.ParseFS(templateFS, "templates/*.tmpl")
		if templatesErr != nil {
			templatesErr = fmt.Errorf("failed to parse prompt templates: %w", templatesErr)
		}
	})
}

type promptData struct {
	Description string
	Preferences []string
}

// BuildPrompt assembles the full instruction prompt for a product description.
func BuildPrompt(flavor Flavor, description string, prefs Preferences) (string, error) {
	loadTemplates()
	if templatesErr != nil {
		return "", templatesErr
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("product description cannot be empty")
	}

	name := string(flavor) + ".tmpl"
	if promptTemplates.Lookup(name) == nil {
		return "", fmt.Errorf("unknown prompt flavor: %q", flavor)
	}

	var buf bytes.Buffer
	err := promptTemplates.ExecuteTemplate(&buf, name, promptData{
		Description: description,
		Preferences: prefs.Encode(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", flavor, err)
	}
	return buf.String(), nil
}

// BuildSimilarDescription rewrites a product description into a request for
// names close to an unavailable domain.
func BuildSimilarDescription(domain, description string) string {
	return fmt.Sprintf("Similar to %q - %s. Generate alternatives that maintain the same essence.",
		domain, strings.TrimSpace(description))
}
