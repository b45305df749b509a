package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/Taichi-iskw/cheta/internal/errors"
	"github.com/Taichi-iskw/cheta/internal/model"
)

// Generator asks a generative model for one structured recommendation
type Generator interface {
	Generate(ctx context.Context, prompt string) (*model.Recommendation, error)
}

// GeminiConfig configures the Gemini-backed Generator
type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty means the SDK default
	BaseURL string
}

// geminiGenerator implements Generator using the Gemini API
type geminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// recommendationSchema constrains the model to a flat {title, url, reason} object
var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":  {Type: genai.TypeString, Description: "Title of the recommended video"},
		"url":    {Type: genai.TypeString, Description: "URL of the recommended video"},
		"reason": {Type: genai.TypeString, Description: "Reason for recommendation"},
	},
	Required: []string{"title", "url", "reason"},
}

// NewGeminiGenerator creates a new Generator backed by the Gemini API
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, "Gemini API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New(errors.CodeInvalidArg, "Gemini model is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create Gemini client")
	}

	return &geminiGenerator{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Generate sends prompt once and parses the JSON answer. No retry.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (*model.Recommendation, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "Gemini request failed")
	}

	text := resp.Text()
	g.logger.Debug("gemini response", slog.String("model", g.model), slog.String("text", text))

	return ParseRecommendation(text)
}

// rawAnswer detects missing fields, which plain strings cannot
type rawAnswer struct {
	Title    *string    `json:"title"`
	URL      *string    `json:"url"`
	Reason   *string    `json:"reason"`
	TopVideo *rawAnswer `json:"top_video"`
}

// ParseRecommendation decodes a model answer. Both the flat schema object and
// the {"top_video": {...}} envelope are accepted; markdown fences are ignored.
func ParseRecommendation(text string) (*model.Recommendation, error) {
	text = stripFences(text)
	if text == "" {
		return nil, errors.New(errors.CodeMalformed, "empty model response")
	}

	var raw rawAnswer
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "model response is not valid JSON")
	}

	answer := &raw
	if raw.TopVideo != nil {
		answer = raw.TopVideo
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"title", answer.Title},
		{"url", answer.URL},
		{"reason", answer.Reason},
	}
	for _, f := range fields {
		if f.value == nil {
			return nil, errors.New(errors.CodeMalformed, fmt.Sprintf("model response is missing required field %q", f.name))
		}
	}

	return &model.Recommendation{
		Title:  *answer.Title,
		URL:    *answer.URL,
		Reason: *answer.Reason,
	}, nil
}

// stripFences removes markdown code fences from model output
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
