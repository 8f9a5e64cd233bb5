package product

import (
	"math/rand/v2"
	"strings"
)

var mockDescriptions = []string{
	"Experience the ultimate in quality with the {name}. Designed for {audience}, this product features {features}. It's the perfect addition to your daily routine, offering reliability and style.",
	"Unlock new possibilities with {name}. Tailored strictly for {audience}, it brings {features} to the table. Elevate your experience today.",
	"Discover the precision of the {name}. A game-changer for {audience}, highlighting {features} for maximum efficiency.",
}

var mockKeywords = []string{"premium", "quality", "durable", "innovative", "must-have", "top-rated"}

const mockSampleSize = 4

// mockGenerate fills a random template and derives keywords without any
// network call.
func mockGenerate(rng *rand.Rand, req ProductRequest) ProductResponse {
	template := mockDescriptions[rng.IntN(len(mockDescriptions))]
	description := strings.NewReplacer(
		"{name}", req.ProductName,
		"{audience}", req.TargetAudience,
		"{features}", joinFeatures(req.Features),
	).Replace(template)

	return ProductResponse{
		ProductName: req.ProductName,
		Description: description,
		Keywords:    mockKeywordSet(rng, req),
	}
}

// mockKeywordSet returns the lowercased first words of the product name and
// audience plus a sample of the vocabulary, without duplicates.
func mockKeywordSet(rng *rand.Rand, req ProductRequest) []string {
	candidates := make([]string, 0, 2+mockSampleSize)
	for _, s := range []string{req.ProductName, req.TargetAudience} {
		if w := firstWord(s); w != "" {
			candidates = append(candidates, w)
		}
	}
	for _, i := range rng.Perm(len(mockKeywords))[:mockSampleSize] {
		candidates = append(candidates, mockKeywords[i])
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, k := range candidates {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}
	return keywords
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
