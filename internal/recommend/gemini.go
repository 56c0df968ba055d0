package recommend

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Tanarius/Learning-Assistant/internal/types"
)

// defaultModel is the Gemini model used for narrative plans.
const defaultModel = "gemini-1.5-flash"

// GeminiGenerator generates narrative learning plans with the Gemini API.
// The call is blocking and is not retried; callers fall back to the template
// generator on failure.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: defaultModel}, nil
}

// Generate builds the learning-plan prompt and asks the model for a
// narrative plan.
func (g *GeminiGenerator) Generate(ctx context.Context, gaps []types.SkillGap, jobContext string) (types.RecommendationSet, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(gaps, jobContext)))
	if err != nil {
		return types.RecommendationSet{}, fmt.Errorf("failed to generate learning plan: %w", err)
	}

	content, err := extractText(resp)
	if err != nil {
		return types.RecommendationSet{}, err
	}

	return types.RecommendationSet{
		AIGenerated: true,
		Content:     content,
		Model:       g.model,
	}, nil
}

// Close releases resources held by the underlying client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var out string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("no text parts in response")
	}
	return out, nil
}
