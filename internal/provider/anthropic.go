// Package provider implements the model capability on the Anthropic Messages
// API. A completion request is the prompt-built message list; the response is
// the first text content block only, no streaming.
package provider

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fahimudin15/mcp-client/internal/chat"
)

const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

// defaultMaxTokens mirrors the completion cap used for every model call.
const defaultMaxTokens = 1000

const completionTemperature = 0.7

// NewClient returns a client using API key from the env.
func NewClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// Model adapts the Anthropic client to the conversation loop's completion
// contract.
type Model struct {
	Client    *anthropic.Client
	ModelID   anthropic.Model
	MaxTokens int64
}

// NewModel wires a Model from the given client, reading MCPC_MODEL and
// MCPC_MAX_TOKENS overrides from the environment.
func NewModel(client *anthropic.Client) *Model {
	m := &Model{Client: client, ModelID: DefaultModel, MaxTokens: defaultMaxTokens}
	if v := os.Getenv("MCPC_MODEL"); v != "" {
		m.ModelID = anthropic.Model(v)
	}
	if v := os.Getenv("MCPC_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			m.MaxTokens = n
		}
	}
	return m
}

// Complete sends msgs and returns the first text block of the response.
// The leading system message (when present) is lifted into the system prompt
// param; remaining messages map to user/assistant turns.
func (m *Model) Complete(ctx context.Context, msgs []chat.Message) (string, error) {
	var system []anthropic.TextBlockParam
	conv := make([]anthropic.MessageParam, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case chat.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case chat.RoleUser:
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case chat.RoleAssistant:
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			return "", fmt.Errorf("unsupported message role %q", msg.Role)
		}
	}

	params := anthropic.MessageNewParams{
		Model:       m.ModelID,
		MaxTokens:   m.MaxTokens,
		Temperature: anthropic.Float(completionTemperature),
		Messages:    conv,
	}
	if len(system) > 0 {
		params.System = system
	}

	resp, err := m.Client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	for _, block := range resp.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return tb.Text, nil
		}
	}
	return "", fmt.Errorf("model call: response contains no text content")
}
