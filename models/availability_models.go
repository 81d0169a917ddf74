package models

// CheckDomainRequest is the body of POST /api/check-domain. The optional
// product context enables AI-generated alternatives.
type CheckDomainRequest struct {
	Domain             string `json:"domain" binding:"required,max=253" example:"facebook.com"`
	ProductDescription string `json:"productDescription,omitempty" binding:"omitempty,max=1000"`
	TonePreference     string `json:"tonePreference,omitempty" binding:"omitempty,tone"`
	StylePreference    string `json:"stylePreference,omitempty" binding:"omitempty,style"`
	AIModel            string `json:"aiModel,omitempty" binding:"omitempty,max=50"`
}

// CheckDomainResponse is the success body of POST /api/check-domain.
type CheckDomainResponse struct {
	IsAvailable  bool     `json:"isAvailable"`
	Alternatives []string `json:"alternatives"`
}
