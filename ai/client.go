package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
)

// ErrNotConfigured is returned when no API key is set
var ErrNotConfigured = errors.New("ai client not configured")

// ErrEmptyCompletion is returned when the model produced no text
var ErrEmptyCompletion = errors.New("empty completion")

// Message is a single chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Options tune a single completion
type Options struct {
	Temperature float32
	MaxTokens   int
}

// Option sets a field of Options
type Option func(*Options)

// WithTemperature sets the sampling temperature
func WithTemperature(t float32) Option {
	return func(o *Options) { o.Temperature = t }
}

// WithMaxTokens caps the completion length
func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

// Client generates text from a message history
type Client interface {
	Chat(ctx context.Context, messages []Message, opts ...Option) (string, error)
}

// OpenAIClient talks to any OpenAI compatible chat completion endpoint. The
// default configuration points it at Gemini.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAIClient builds a client from the AI config section
func NewOpenAIClient(conf config.AIConfig) (*OpenAIClient, error) {
	if conf.APIKey == "" {
		return nil, ErrNotConfigured
	}
	oc := openai.DefaultConfig(conf.APIKey)
	if conf.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(conf.BaseURL, "/")
	}

	limit := rate.Inf
	if conf.RatePerSecond > 0 {
		limit = rate.Limit(conf.RatePerSecond)
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(oc),
		model:   conf.Model,
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// Chat sends the history and returns the assistant text
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message, opts ...Option) (string, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: o.Temperature,
		MaxTokens:   o.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
