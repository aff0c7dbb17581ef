package advisor

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI adapts an OpenAI chat model as the last fallback tier behind the
// Gemini candidates.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI wraps a shared OpenAI client for one model name.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	return &OpenAI{client: client, model: model}
}

func (o *OpenAI) Name() string { return o.model }

// Generate sends the conversation as a chat completion. Status codes carry
// the retryable/fatal classification; message sniffing is the fallback.
func (o *OpenAI) Generate(ctx context.Context, system string, msgs []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range msgs {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   1024,
	})
	if err != nil {
		apiErr := &openai.APIError{}
		if errors.As(err, &apiErr) {
			switch apiErr.HTTPStatusCode {
			case http.StatusTooManyRequests, http.StatusNotFound:
				return "", &Failure{Model: o.model, Reason: apiErr.Message, Retryable: true}
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", &Failure{Model: o.model, Reason: apiErr.Message, Retryable: false}
			}
		}
		return "", classify(o.model, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Failure{Model: o.model, Reason: "empty response", Retryable: true}
	}
	return resp.Choices[0].Message.Content, nil
}
