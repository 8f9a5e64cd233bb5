// Package product turns product metadata into marketing copy and audience
// suggestions, either through a text-completion provider or locally.
package product

// DefaultTone is used when a request does not name one.
const DefaultTone = "professional"

// ProductRequest describes the product to write copy for.
type ProductRequest struct {
	ProductName    string   `json:"product_name" validate:"required"`
	Features       []string `json:"features"`
	TargetAudience string   `json:"target_audience"`
	Tone           string   `json:"tone"`
}

// WithDefaults returns a copy of r with an empty tone replaced by DefaultTone.
func (r ProductRequest) WithDefaults() ProductRequest {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	return r
}

// ProductResponse is always fully populated; failures are carried in
// Description and Keywords.
type ProductResponse struct {
	ProductName string   `json:"product_name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type AudienceRequest struct {
	ProductName string   `json:"product_name" validate:"required"`
	Features    []string `json:"features"`
}

// AudienceResponse holds a single error string in Audiences on failure.
type AudienceResponse struct {
	Audiences []string `json:"audiences"`
}
