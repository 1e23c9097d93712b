package perception

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiClient implements VisionClient using the Google GenAI SDK. Images are
// attached inline as raw bytes; the SDK handles wire encoding.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a new Gemini vision client.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// AnalyzeImages sends one generate-content request carrying the system
// instruction and each image preceded by its label.
func (c *GeminiClient) AnalyzeImages(ctx context.Context, systemPrompt string, images []ImageInput) (string, error) {
	c.logger.Debug("sending analysis request",
		zap.String("model", c.model),
		zap.Int("images", len(images)))

	var parts []*genai.Part
	for _, img := range images {
		mime := img.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts,
			genai.NewPartFromText(img.Label),
			genai.NewPartFromBytes(img.Data, mime),
		)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(analysisTemperature)),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	return strings.TrimSpace(result.Text()), nil
}

// GetModel returns the current model.
func (c *GeminiClient) GetModel() string {
	return c.model
}
