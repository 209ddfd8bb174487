package images

import (
	"net/url"
	"strings"

	"counter_billing/internal/usecase/interfaces"
)

const DefaultBaseURL = "https://api.a0.dev/assets/image"

// PromptURLBuilder points menu items at an image-generation endpoint that
// renders a picture from a text prompt. Nothing is fetched here; the URL is
// stored whether or not it later resolves.
type PromptURLBuilder struct {
	baseURL string
}

var _ interfaces.IImageURLBuilder = (*PromptURLBuilder)(nil)

func NewPromptURLBuilder(baseURL string) *PromptURLBuilder {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PromptURLBuilder{baseURL: baseURL}
}

// Build returns <base>?text=<prompt>&aspect=1:1. The prompt is escaped like a
// URI component: spaces become %20 and reserved characters such as & are
// percent-encoded.
func (b *PromptURLBuilder) Build(name string) string {
	prompt := "delicious " + strings.TrimSpace(name) + " food dish presentation"
	return b.baseURL + "?text=" + escapeComponent(prompt) + "&aspect=1:1"
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
