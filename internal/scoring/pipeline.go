package scoring

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"drawscore/internal/perception"
)

// Image labels in the user turn. The rubric refers to them by these names.
const (
	baseImageLabel    = "Base image:"
	drawingImageLabel = "Drawing to analyze:"
)

// Pipeline carries one drawing analysis end to end: read both images, make a
// single vision-service call, and route the raw text through the interpreter.
type Pipeline struct {
	client perception.VisionClient
	interp ResponseInterpreter
	logger *zap.Logger
}

// NewPipeline creates a pipeline over the given provider client and
// interpreter.
func NewPipeline(client perception.VisionClient, interp ResponseInterpreter, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{client: client, interp: interp, logger: logger}
}

// Analyze scores the drawing at drawingPath against the template at basePath.
// It never returns an error: file faults, service faults, and empty model
// output all degrade to the sentinel score.
func (p *Pipeline) Analyze(ctx context.Context, basePath, drawingPath string) Score {
	baseImage, err := os.ReadFile(basePath)
	if err != nil {
		p.logger.Error("failed to read base image",
			zap.String("path", basePath),
			zap.Error(err))
		return Sentinel()
	}

	drawingImage, err := os.ReadFile(drawingPath)
	if err != nil {
		p.logger.Error("failed to read drawing image",
			zap.String("path", drawingPath),
			zap.Error(err))
		return Sentinel()
	}

	images := []perception.ImageInput{
		{Label: baseImageLabel, Data: baseImage, MIMEType: "image/png"},
		{Label: drawingImageLabel, Data: drawingImage, MIMEType: "image/png"},
	}

	raw, err := p.client.AnalyzeImages(ctx, scoringPolicy, images)
	if err != nil {
		p.logger.Error("vision service call failed", zap.Error(err))
		return Sentinel()
	}

	if strings.TrimSpace(raw) == "" {
		p.logger.Warn("vision service returned an empty response")
		return Sentinel()
	}

	p.logger.Debug("raw model response", zap.String("response", raw))
	return p.interp.Process(raw)
}
