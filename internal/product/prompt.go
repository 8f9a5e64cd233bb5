package product

import (
	"fmt"
	"strings"
)

func joinFeatures(features []string) string {
	return strings.Join(features, ", ")
}

func buildDescriptionPrompt(req ProductRequest) string {
	return fmt.Sprintf(`Generate a %s product description for:
Product: %s
Audience: %s
Features: %s

Also provide 5 SEO keywords.
Return strictly valid JSON with exactly these keys:
  "description": a string,
  "keywords": a list of strings.
Do not wrap the JSON in markdown code fences.`,
		req.Tone, req.ProductName, req.TargetAudience, joinFeatures(req.Features))
}

func buildAudiencePrompt(req AudienceRequest) string {
	return fmt.Sprintf(`Suggest exactly 5 distinct target audiences for this product.
Product: %s
Features: %s

Return a JSON object with a single key "audiences" holding a list of strings.
Do not use markdown.`,
		req.ProductName, joinFeatures(req.Features))
}
