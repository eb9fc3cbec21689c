package services

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ReplyGenerator produces an assistant reply from the visible conversation.
// The chat service falls back to the rule-based responder when the generator
// is absent or fails.
type ReplyGenerator interface {
	Reply(ctx context.Context, history []ChatMessage, message string) (string, error)
}

const chatSystemPrompt = "You are FoodZy Assistant, a friendly helper for a food " +
	"ordering app. Keep answers short and focused on the menu, orders, and delivery."

// OpenAIGenerator calls an OpenAI-compatible chat endpoint via langchaingo.
type OpenAIGenerator struct {
	client *openai.LLM
	model  string
}

func NewOpenAIGenerator() (*OpenAIGenerator, error) {
	token := os.Getenv("CHAT_API_KEY")
	if token == "" {
		return nil, fmt.Errorf("CHAT_API_KEY is not configured")
	}

	opts := []openai.Option{openai.WithToken(token)}
	if baseURL := os.Getenv("CHAT_API_BASE_URL"); baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	model := os.Getenv("CHAT_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIGenerator{client: client, model: model}, nil
}

// Reply passes the full visible history each turn; no conversation state is
// retained between calls.
func (g *OpenAIGenerator) Reply(ctx context.Context, history []ChatMessage, message string) (string, error) {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, chatSystemPrompt))

	for _, msg := range history {
		msgType := llms.ChatMessageTypeHuman
		if msg.Role == "assistant" {
			msgType = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(msgType, msg.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	response, err := g.client.GenerateContent(ctx, messages,
		llms.WithModel(g.model),
		llms.WithMaxTokens(256),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat reply: %w", err)
	}
	if response == nil || len(response.Choices) == 0 || response.Choices[0].Content == "" {
		return "", fmt.Errorf("empty response from chat model")
	}
	return response.Choices[0].Content, nil
}
