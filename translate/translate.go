// Package translate fills the Kazakh variants of a promoted point when an
// OpenAI key is configured. Without a key (or on any API error) the
// moderation workflow just copies the Russian text, so this stays an
// optional assist rather than a dependency of the promotion path.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const translatePrompt = "Переведи следующий текст с русского на казахский. " +
	"Верни только перевод, без пояснений."

type OpenAITranslator struct {
	client *openai.Client
}

// New returns nil when no key is configured; the caller treats nil as
// "copy the primary text".
func New(apiKey string) *OpenAITranslator {
	if apiKey == "" {
		return nil
	}
	return &OpenAITranslator{client: openai.NewClient(apiKey)}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translatePrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translation returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
