package agents

import (
	"context"
	"fmt"
	"time"

	"promosphere/server/llm/providers/shared"
	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

// DefaultMaxTurns bounds the tool-call loop. The NL2SQL agent's
// revise-and-revalidate cycle needs several turns; anything past this
// is the model thrashing.
const DefaultMaxTurns = 12

// LoopConfig parameterizes one tool-call loop run.
type LoopConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
	MaxTurns    int
	WebSearch   bool
}

// RunToolLoop drives the model against a toolset until it answers in
// text: send instruction and request, execute any requested tools, feed
// the results back, repeat. Tool failures are returned to the model as
// error payloads; deciding whether to retry, rephrase, or give up is
// the model's job, not ours.
func RunToolLoop(ctx context.Context, rt *Runtime, cfg LoopConfig, instruction, request string, toolset []tools.Tool, state map[string]any) (*AgentResult, error) {
	start := time.Now()
	result := &AgentResult{Stats: AgentStats{StartedAt: start}}

	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	registry := tools.NewRegistry(toolset...)

	messages := []shared.Message{
		{Role: shared.RoleSystem, Content: instruction},
		{Role: shared.RoleUser, Content: request},
	}

	for turn := 0; turn < maxTurns; turn++ {
		resp, err := rt.LLM.Complete(ctx, &shared.CompletionRequest{
			Messages: messages,
			Options: shared.CompletionOptions{
				Model:       cfg.Model,
				Temperature: cfg.Temperature,
				MaxTokens:   cfg.MaxTokens,
				Tools:       tools.Definitions(toolset),
				WebSearch:   cfg.WebSearch,
			},
		})
		if err != nil {
			result.Stats.Duration = time.Since(start)
			return result, fmt.Errorf("completion failed: %w", err)
		}

		result.Stats.Turns++
		result.Stats.TokensUsed += resp.Usage.TotalTokens

		if len(resp.ToolCalls) == 0 {
			result.Content = resp.Content
			result.Success = true
			result.Stats.Duration = time.Since(start)
			return result, nil
		}

		messages = append(messages, shared.Message{
			Role:      shared.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			result.Stats.ToolCalls++
			rt.Logger.Debug().Str("tool", call.Name).Msg("executing tool call")

			toolResult, err := registry.Execute(ctx, &toolshared.ToolInput{
				Name:  call.Name,
				Data:  call.Arguments,
				State: state,
			})
			if err != nil {
				// Unknown tool or hard failure: surface it to the
				// model as an error payload and keep the loop alive.
				toolResult = toolshared.ErrorResult(err)
				rt.Logger.Warn().Str("tool", call.Name).Err(err).Msg("tool execution failed")
			}

			messages = append(messages, shared.Message{
				Role: shared.RoleTool,
				ToolInvocation: &shared.ToolInvocation{
					CallID:  call.ID,
					Name:    call.Name,
					Content: toolResult.Content(),
				},
			})
		}
	}

	result.Stats.Duration = time.Since(start)
	return result, fmt.Errorf("tool loop did not converge after %d turns", maxTurns)
}
