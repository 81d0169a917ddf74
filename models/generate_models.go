package models

import "github.com/vit0-9/namegen_api/pkg/suggestions"

// GenerateDomainsRequest is the body of POST /api/generate-domains.
type GenerateDomainsRequest struct {
	ProductDescription string `json:"productDescription" binding:"required,min=10,max=1000" example:"AI-powered resume builder for Gen Z professionals"`
	TonePreference     string `json:"tonePreference,omitempty" binding:"omitempty,tone" enums:"Funny,Trendy,Minimalist,Straightforward,Edgy"`
	StylePreference    string `json:"stylePreference,omitempty" binding:"omitempty,style" enums:"Open to All,One word,Phrase,Two Word Combo"`
	AIModel            string `json:"aiModel,omitempty" binding:"omitempty,max=50" example:"gemini"`
}

// DomainSuggestion is one suggested name in a response.
type DomainSuggestion struct {
	Name         string   `json:"name" example:"ResumeRocket"`
	Style        string   `json:"style" enums:"Descriptive,Phrase-Based,Humorous"`
	Domain       string   `json:"domain" example:"resumerocket.com"`
	Rationale    string   `json:"rationale"`
	IsAvailable  *bool    `json:"isAvailable,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// GenerateDomainsResponse is the success body of POST /api/generate-domains.
// Demo is set when canned suggestions replace live AI output.
type GenerateDomainsResponse struct {
	Domains []DomainSuggestion `json:"domains"`
	Demo    bool               `json:"demo,omitempty"`
	Message string             `json:"message,omitempty"`
}

func NewGenerateDomainsResponse(result *suggestions.Result) GenerateDomainsResponse {
	domains := make([]DomainSuggestion, 0, len(result.Domains))
	for _, d := range result.Domains {
		domains = append(domains, DomainSuggestion{
			Name:         d.Name,
			Style:        d.Style,
			Domain:       d.Domain,
			Rationale:    d.Rationale,
			IsAvailable:  d.IsAvailable,
			Alternatives: d.Alternatives,
		})
	}
	return GenerateDomainsResponse{
		Domains: domains,
		Demo:    result.Demo,
		Message: result.Message,
	}
}
