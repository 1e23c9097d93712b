// Package scoring turns raw multimodal model output into drawing scores. The
// whole package is built around one guarantee: a play session always ends in
// a well-formed score, even when the model output is garbage.
package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Score is the outcome of one analysis. The zero-score sentinel uses
// "unknown" for both strings.
type Score struct {
	Total       float64
	Category    string
	DetailScore int
	DrawingName string
}

// Sentinel returns the fixed fallback score used whenever analysis cannot be
// completed reliably.
func Sentinel() Score {
	return Score{Total: 0, Category: "unknown", DetailScore: 0, DrawingName: "unknown"}
}

// CategoryResolver canonicalizes a category name and returns its novelty
// score. Implemented by registry.Registry.
type CategoryResolver interface {
	Resolve(name string) (string, int)
}

// ResponseInterpreter extracts a score from raw model text. Process is a
// total function: it never returns an error, only a score or the sentinel.
type ResponseInterpreter interface {
	Process(raw string) Score
}

// Interpreter is the default ResponseInterpreter. It tolerates model output
// wrapped in prose or markdown fences and fills in defaults for missing or
// wrongly typed fields.
type Interpreter struct {
	categories CategoryResolver
	logger     *zap.Logger
}

// NewInterpreter creates an interpreter that resolves category novelty
// through the given resolver.
func NewInterpreter(categories CategoryResolver, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{categories: categories, logger: logger}
}

// Process extracts the analysis object embedded in raw model output and
// combines the category novelty bonus with the reported detail count.
func (i *Interpreter) Process(raw string) Score {
	doc, ok := extractAnalysis(raw)
	if !ok {
		i.logger.Warn("no usable analysis object in model output",
			zap.Int("response_len", len(raw)))
		return Sentinel()
	}

	category, categoryScore := i.categories.Resolve(stringField(doc, "detected_category", "unknown"))
	name := stringField(doc, "Name", "unknown")
	detailScore := intField(doc, "detail_count")
	total := float64(categoryScore + detailScore)

	i.logger.Info("drawing scored",
		zap.Float64("total", total),
		zap.String("category", category),
		zap.Int("detail_score", detailScore),
		zap.String("drawing_name", name))

	return Score{
		Total:       total,
		Category:    category,
		DetailScore: detailScore,
		DrawingName: name,
	}
}

// extractAnalysis locates the JSON object embedded in free text. Models wrap
// their answer in commentary or code fences; the contract is first '{' to
// last '}' after fence stripping. A missing brace pair or malformed document
// yields ok=false, never a panic or error.
func extractAnalysis(raw string) (map[string]interface{}, bool) {
	cleaned := stripMarkdownCodeFences(strings.TrimSpace(raw))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &doc); err != nil {
		return nil, false
	}
	return doc, true
}

// stripMarkdownCodeFences removes markdown code fence wrapping.
// Handles ```json, ```, and variations with language specifiers.
func stripMarkdownCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "```") {
		firstNewline := strings.Index(trimmed, "\n")
		if firstNewline != -1 {
			lastFence := strings.LastIndex(trimmed, "```")
			if lastFence > firstNewline {
				return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
			}
		}
	}

	return s
}

// stringField reads a field as a string. Missing or null yields the
// fallback; numbers and bools are formatted rather than dropped.
func stringField(doc map[string]interface{}, key, fallback string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == math.Trunc(s) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fallback
	}
}

// intField reads a field as a non-negative integer. Numeric strings are
// parsed; anything else, including negatives, falls back to 0.
func intField(doc map[string]interface{}, key string) int {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0
	}

	var n int
	switch c := v.(type) {
	case float64:
		n = int(c)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}
