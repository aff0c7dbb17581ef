// Package advisor builds the financial-data prompt for the chat advisor and
// drives a prioritized list of text-generation models, falling over to the
// next candidate on retryable failures.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Message roles. The advisor is agnostic to which model produced an
// assistant message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the running conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Model is one text-generation candidate. Generate returns the reply text,
// or an error which is a *Failure when the model itself rejected the call.
type Model interface {
	Name() string
	Generate(ctx context.Context, system string, msgs []Message) (string, error)
}

// Failure is a classified model error. Quota exhaustion, unknown models and
// unsupported features are retryable: the next candidate gets a chance.
// Anything else (an invalid credential, typically) is fatal and aborts the
// whole chain immediately.
type Failure struct {
	Model     string
	Reason    string
	Retryable bool
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Model, f.Reason)
}

// ExhaustedError reports that every candidate model failed, listing each
// attempt.
type ExhaustedError struct {
	Attempts []*Failure
}

func (e *ExhaustedError) Error() string {
	var sb strings.Builder
	sb.WriteString("all models exhausted:")
	for _, a := range e.Attempts {
		sb.WriteString("\n  - ")
		sb.WriteString(a.Error())
	}
	return sb.String()
}

// Advisor tries models in priority order.
type Advisor struct {
	models []Model
	log    zerolog.Logger
}

// New creates an advisor over a priority-ordered candidate list.
func New(log zerolog.Logger, models ...Model) *Advisor {
	return &Advisor{models: models, log: log}
}

// Ask sends the conversation to the first model that answers. Retryable
// failures are absorbed by moving to the next candidate; a fatal failure
// surfaces immediately; exhausting the list yields a single aggregated
// error naming every attempt.
func (a *Advisor) Ask(ctx context.Context, msgs []Message) (string, error) {
	if len(a.models) == 0 {
		return "", fmt.Errorf("no models configured")
	}
	var attempts []*Failure
	for _, m := range a.models {
		a.log.Debug().Str("model", m.Name()).Msg("trying model")
		text, err := m.Generate(ctx, SystemPrompt, msgs)
		if err == nil {
			a.log.Info().Str("model", m.Name()).Msg("model answered")
			return text, nil
		}
		f, ok := err.(*Failure)
		if !ok || !f.Retryable {
			return "", err
		}
		a.log.Warn().Str("model", m.Name()).Str("reason", f.Reason).Msg("model failed, trying next")
		attempts = append(attempts, f)
	}
	return "", &ExhaustedError{Attempts: attempts}
}

// WithContext injects the financial snapshot into the first user message of
// the conversation, the way the chat surface feeds the advisor.
func WithContext(msgs []Message, context string) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	for i := range out {
		if out[i].Role == RoleUser {
			out[i].Content = fmt.Sprintf("[Financial Data Context]\n%s\n\n[User Question]\n%s",
				context, out[i].Content)
			break
		}
	}
	return out
}

// classify maps a raw model error message onto the retryable/fatal split:
// quota or rate limits, unknown models and unsupported request features move
// on to the next candidate, everything else aborts.
func classify(model string, err error) *Failure {
	msg := err.Error()
	lower := strings.ToLower(msg)
	retryable := strings.Contains(lower, "429") ||
		strings.Contains(lower, "quota") ||
		strings.Contains(lower, "limit") ||
		strings.Contains(lower, "404") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "unknown name") ||
		strings.Contains(lower, "not supported") ||
		strings.Contains(lower, "invalid")
	return &Failure{Model: model, Reason: msg, Retryable: retryable}
}
