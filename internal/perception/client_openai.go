package perception

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// OpenAIClient implements VisionClient for the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// DefaultOpenAIConfig returns sensible defaults for drawing analysis.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o-mini",
	}
}

// NewOpenAIClient creates a new OpenAI client with default config.
func NewOpenAIClient(apiKey string, logger *zap.Logger) *OpenAIClient {
	return NewOpenAIClientWithConfig(DefaultOpenAIConfig(apiKey), logger)
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom config.
func NewOpenAIClientWithConfig(config OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com/v1"
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// AnalyzeImages sends the system instruction and labeled images as a single
// chat completion request. One attempt, no retry loop.
func (c *OpenAIClient) AnalyzeImages(ctx context.Context, systemPrompt string, images []ImageInput) (string, error) {
	startTime := time.Now()
	c.logger.Debug("sending analysis request",
		zap.String("model", c.model),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("images", len(images)))

	if c.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	var parts []OpenAIContentPart
	for _, img := range images {
		mime := img.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		encoded := base64.StdEncoding.EncodeToString(img.Data)
		parts = append(parts,
			OpenAIContentPart{Type: "text", Text: img.Label},
			OpenAIContentPart{Type: "image_url", ImageURL: &OpenAIImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", mime, encoded),
			}},
		)
	}

	reqBody := OpenAIRequest{
		Model: c.model,
		Messages: []OpenAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: parts},
		},
		Temperature: analysisTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var openaiResp OpenAIResponse
	if err := json.Unmarshal(body, &openaiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if openaiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", openaiResp.Error.Message)
	}

	if len(openaiResp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	response := strings.TrimSpace(openaiResp.Choices[0].Message.Content)
	c.logger.Debug("analysis request completed",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("response_len", len(response)))
	return response, nil
}

// GetModel returns the current model.
func (c *OpenAIClient) GetModel() string {
	return c.model
}
