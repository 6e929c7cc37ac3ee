package shared

import (
	"context"
	"fmt"
)

// LLMProvider is the unified interface every model backend implements.
type LLMProvider interface {
	Name() string
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// ValidateCompletionRequest validates a completion request before it is
// handed to a backend.
func ValidateCompletionRequest(req *CompletionRequest) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("messages cannot be empty")
	}
	for i, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		case "":
			return fmt.Errorf("message %d: role cannot be empty", i)
		default:
			return fmt.Errorf("message %d: invalid role %q", i, msg.Role)
		}
	}
	if req.Options.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	return nil
}
