package gemini

import (
	"context"
	"fmt"

	vgenai "cloud.google.com/go/vertexai/genai"

	"promosphere/server/llm/providers/shared"
)

// completeGrounded answers through Vertex AI with the Google Search
// grounding tool, which the Gemini API client does not expose.
// Grounded turns carry text only; callers never combine grounding with
// function tools.
func (p *Provider) completeGrounded(ctx context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	if p.vertex == nil {
		return nil, fmt.Errorf("gemini: grounded search requires a project and location")
	}
	if len(req.Options.Tools) > 0 {
		return nil, fmt.Errorf("gemini: grounded search cannot be combined with function tools")
	}

	model := p.vertex.GenerativeModel(req.Options.Model)
	model.SetTemperature(req.Options.Temperature)
	if req.Options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.Options.MaxTokens))
	}
	if system := collectSystem(req.Messages); system != "" {
		model.SystemInstruction = &vgenai.Content{
			Parts: []vgenai.Part{vgenai.Text(system)},
		}
	}
	model.Tools = []*vgenai.Tool{
		{GoogleSearchRetrieval: &vgenai.GoogleSearchRetrieval{}},
	}

	var contents []*vgenai.Content
	for _, msg := range req.Messages {
		switch msg.Role {
		case shared.RoleUser:
			contents = append(contents, &vgenai.Content{
				Role:  "user",
				Parts: []vgenai.Part{vgenai.Text(msg.Content)},
			})
		case shared.RoleAssistant:
			if msg.Content != "" {
				contents = append(contents, &vgenai.Content{
					Role:  "model",
					Parts: []vgenai.Part{vgenai.Text(msg.Content)},
				})
			}
		}
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("gemini: no user message to send")
	}
	last := contents[len(contents)-1]

	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: grounded search: %w", err)
	}

	out := &shared.CompletionResponse{Model: req.Options.Model}
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
		if text, ok := part.(vgenai.Text); ok {
			out.Content += string(text)
		}
	}
	return out, nil
}
