// internal/assist/assist.go
package assist

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyResponse = errors.New("model returned an empty response")

// Assistant suggests answers for flashcards a user is drafting.
// Implementations may call an LLM or return canned results (for tests).
type Assistant interface {
	SuggestAnswer(ctx context.Context, question string) (string, error)
}

const systemPrompt = `You help a student write flashcard answers.
Given a flashcard question, reply with a concise, factually correct answer
suitable for the back of the card. Reply with the answer text only, no
preamble and no markdown.`

// LLMAssistant talks to any OpenAI-compatible chat endpoint, including
// local servers like LM Studio or Ollama.
type LLMAssistant struct {
	client *openai.Client
	model  string
}

func NewLLMAssistant(baseURL, apiKey, model string) *LLMAssistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &LLMAssistant{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (a *LLMAssistant) SuggestAnswer(ctx context.Context, question string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrEmptyResponse
	}
	return answer, nil
}
