package advisor

import (
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// DefaultModels assembles the standard candidate chain: the Gemini priority
// list, then an OpenAI model as the final tier. Either client may be nil
// when its credential is not configured.
func DefaultModels(gem *genai.Client, oa *openai.Client) []Model {
	var models []Model
	if gem != nil {
		for _, name := range DefaultGeminiModels {
			models = append(models, NewGemini(gem, name))
		}
	}
	if oa != nil {
		models = append(models, NewOpenAI(oa, openai.GPT4oMini))
	}
	return models
}
