// Package perception holds the clients that carry drawing-analysis requests
// to multimodal LLM providers. The scoring layer talks to VisionClient only;
// provider selection happens in the factory.
package perception

import "context"

// analysisTemperature is the fixed sampling temperature for every analysis
// request. Drawing scoring wants a creative read of the image, not a
// deterministic one.
const analysisTemperature = 0.9

// ImageInput is one labeled image attached to an analysis request.
type ImageInput struct {
	Label    string
	Data     []byte
	MIMEType string
}

// VisionClient sends a system instruction plus a set of labeled images to a
// multimodal provider and returns the raw model text. Implementations make
// exactly one attempt per call.
type VisionClient interface {
	AnalyzeImages(ctx context.Context, systemPrompt string, images []ImageInput) (string, error)
}

// Provider identifies a vision provider.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)
