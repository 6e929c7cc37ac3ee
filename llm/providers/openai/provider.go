// Package openai implements the LLMProvider interface for
// OpenAI-compatible chat completion backends.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"promosphere/server/llm/providers/shared"
)

// Config holds OpenAI provider configuration.
type Config struct {
	APIKey  string
	BaseURL string
	OrgID   string
}

// Provider implements shared.LLMProvider for OpenAI-compatible APIs.
type Provider struct {
	client *openai.Client
	config Config
}

// NewProvider creates a new OpenAI provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.OrgID != "" {
		clientConfig.OrgID = cfg.OrgID
	}
	return &Provider{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return "openai" }

// Complete performs a completion request.
func (p *Provider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	if err := shared.ValidateCompletionRequest(req); err != nil {
		return nil, err
	}

	openaiReq, err := toOpenAIRequest(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to convert request: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, *openaiReq)
	if err != nil {
		return nil, fmt.Errorf("openai: completion failed: %w", err)
	}

	return fromOpenAIResponse(resp)
}

func toOpenAIRequest(req *shared.CompletionRequest) (*openai.ChatCompletionRequest, error) {
	out := &openai.ChatCompletionRequest{
		Model:       req.Options.Model,
		Temperature: req.Options.Temperature,
		MaxTokens:   req.Options.MaxTokens,
	}

	for _, msg := range req.Messages {
		m := openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
		for _, call := range msg.ToolCalls {
			args, err := json.Marshal(call.Arguments)
			if err != nil {
				return nil, fmt.Errorf("tool call %s: %w", call.Name, err)
			}
			m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
				ID:   call.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      call.Name,
					Arguments: string(args),
				},
			})
		}
		if msg.Role == shared.RoleTool && msg.ToolInvocation != nil {
			m.ToolCallID = msg.ToolInvocation.CallID
			m.Content = msg.ToolInvocation.Content
		}
		out.Messages = append(out.Messages, m)
	}

	for _, def := range req.Options.Tools {
		out.Tools = append(out.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.JSONSchema,
			},
		})
	}

	return out, nil
}

func fromOpenAIResponse(resp openai.ChatCompletionResponse) (*shared.CompletionResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response from model")
	}
	choice := resp.Choices[0].Message

	out := &shared.CompletionResponse{
		Content: choice.Content,
		Model:   resp.Model,
		Usage: shared.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	for _, call := range choice.ToolCalls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return nil, fmt.Errorf("openai: tool call %s arguments: %w", call.Function.Name, err)
			}
		}
		out.ToolCalls = append(out.ToolCalls, shared.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: args,
		})
	}

	return out, nil
}
