package advisor

import (
	"context"

	"google.golang.org/genai"
)

// DefaultGeminiModels is the priority order of Gemini candidates, fastest
// and cheapest first.
var DefaultGeminiModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
}

// Gemini adapts one Gemini model to the Model interface.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini wraps a shared genai client for one model name.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{client: client, model: model}
}

func (g *Gemini) Name() string { return g.model }

// Generate sends the full conversation with the system instruction and
// returns the reply text. Model errors are classified for the fallback loop.
func (g *Gemini) Generate(ctx context.Context, system string, msgs []Message) (string, error) {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		TopP:              genai.Ptr[float32](0.9),
		MaxOutputTokens:   1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", classify(g.model, err)
	}
	text := resp.Text()
	if text == "" {
		return "", &Failure{Model: g.model, Reason: "empty response", Retryable: true}
	}
	return text, nil
}
