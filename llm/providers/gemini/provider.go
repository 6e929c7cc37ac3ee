// Package gemini implements the LLMProvider interface on top of the
// Google generative AI SDK.
package gemini

import (
	"context"
	"fmt"

	vgenai "cloud.google.com/go/vertexai/genai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"promosphere/server/llm/providers/shared"
)

// Config holds Gemini provider configuration. Project and Location
// enable the Vertex client used for Google-Search-grounded turns.
type Config struct {
	APIKey   string
	Project  string
	Location string
}

// Provider implements shared.LLMProvider for Gemini models.
type Provider struct {
	client *genai.Client
	vertex *vgenai.Client
}

// NewProvider creates a Gemini provider backed by a single client.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	p := &Provider{client: client}
	if cfg.Project != "" {
		vertex, err := vgenai.NewClient(ctx, cfg.Project, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("gemini: failed to create vertex client: %w", err)
		}
		p.vertex = vertex
	}
	return p, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return "gemini" }

// Close releases the underlying client connections.
func (p *Provider) Close() error {
	err := p.client.Close()
	if p.vertex != nil {
		if verr := p.vertex.Close(); err == nil {
			err = verr
		}
	}
	return err
}

// Complete performs a chat completion, replaying full message history
// through a chat session so tool-call turns round-trip correctly.
func (p *Provider) Complete(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	if err := shared.ValidateCompletionRequest(req); err != nil {
		return nil, err
	}
	if req.Options.WebSearch {
		return p.completeGrounded(ctx, req)
	}

	model := p.client.GenerativeModel(req.Options.Model)
	model.SetTemperature(req.Options.Temperature)
	if req.Options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.Options.MaxTokens))
	}

	if system := collectSystem(req.Messages); system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	for _, def := range req.Options.Tools {
		decl, err := toFunctionDeclaration(def)
		if err != nil {
			return nil, fmt.Errorf("gemini: tool %s: %w", def.Name, err)
		}
		model.Tools = append(model.Tools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{decl},
		})
	}
	history, last, err := toContents(req.Messages)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, fmt.Errorf("gemini: no user or tool message to send")
	}

	session := model.StartChat()
	session.History = history

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: send message: %w", err)
	}

	return fromResponse(resp, req.Options.Model)
}

// collectSystem concatenates system messages; Gemini takes them as a
// separate instruction rather than a conversation turn.
func collectSystem(messages []shared.Message) string {
	var system string
	for _, msg := range messages {
		if msg.Role == shared.RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += msg.Content
		}
	}
	return system
}

// toContents converts non-system messages to genai history plus the
// final content to send.
func toContents(messages []shared.Message) ([]*genai.Content, *genai.Content, error) {
	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case shared.RoleSystem:
			continue
		case shared.RoleUser:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		case shared.RoleAssistant:
			var parts []genai.Part
			if msg.Content != "" {
				parts = append(parts, genai.Text(msg.Content))
			}
			for _, call := range msg.ToolCalls {
				parts = append(parts, genai.FunctionCall{
					Name: call.Name,
					Args: call.Arguments,
				})
			}
			contents = append(contents, &genai.Content{Role: "model", Parts: parts})
		case shared.RoleTool:
			inv := msg.ToolInvocation
			if inv == nil {
				return nil, nil, fmt.Errorf("gemini: tool message without invocation")
			}
			part := genai.FunctionResponse{
				Name:     inv.Name,
				Response: map[string]any{"result": inv.Content},
			}
			// Consecutive tool results batch into one function turn.
			if n := len(contents); n > 0 && contents[n-1].Role == "function" {
				contents[n-1].Parts = append(contents[n-1].Parts, part)
				continue
			}
			contents = append(contents, &genai.Content{
				Role:  "function",
				Parts: []genai.Part{part},
			})
		}
	}
	if len(contents) == 0 {
		return nil, nil, nil
	}
	last := contents[len(contents)-1]
	return contents[:len(contents)-1], last, nil
}

func fromResponse(resp *genai.GenerateContentResponse, model string) (*shared.CompletionResponse, error) {
	out := &shared.CompletionResponse{Model: model}
	if resp.UsageMetadata != nil {
		out.Usage = shared.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: empty response from model")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			out.Content += string(v)
		case genai.FunctionCall:
			out.ToolCalls = append(out.ToolCalls, shared.ToolCall{
				ID:        v.Name,
				Name:      v.Name,
				Arguments: v.Args,
			})
		}
	}
	return out, nil
}

// toFunctionDeclaration converts a plain JSON schema map into the SDK's
// typed schema.
func toFunctionDeclaration(def shared.ToolDef) (*genai.FunctionDeclaration, error) {
	schema, err := toSchema(def.JSONSchema)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	}
	return &genai.FunctionDeclaration{
		Name:        def.Name,
		Description: def.Description,
		Parameters:  schema,
	}, nil
}

func toSchema(m map[string]any) (*genai.Schema, error) {
	if m == nil {
		return nil, nil
	}
	schema := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		switch t {
		case "object":
			schema.Type = genai.TypeObject
		case "string":
			schema.Type = genai.TypeString
		case "integer":
			schema.Type = genai.TypeInteger
		case "number":
			schema.Type = genai.TypeNumber
		case "boolean":
			schema.Type = genai.TypeBoolean
		case "array":
			schema.Type = genai.TypeArray
		default:
			return nil, fmt.Errorf("unsupported schema type %q", t)
		}
	}
	if d, ok := m["description"].(string); ok {
		schema.Description = d
	}
	if props, ok := m["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			propMap, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %q is not an object", name)
			}
			prop, err := toSchema(propMap)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			schema.Properties[name] = prop
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		itemSchema, err := toSchema(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		schema.Items = itemSchema
	}
	switch req := m["required"].(type) {
	case []string:
		schema.Required = req
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}
	return schema, nil
}
