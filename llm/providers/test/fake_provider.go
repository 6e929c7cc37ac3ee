// Package test provides a scriptable LLM provider for exercising
// agents and the tool-call loop without network access.
package test

import (
	"context"
	"fmt"
	"sync"

	"promosphere/server/llm/providers/shared"
)

// FakeProvider implements shared.LLMProvider for testing. Responses are
// consumed in order, so a tool-call turn followed by a text turn
// scripts one full loop iteration.
type FakeProvider struct {
	mu        sync.Mutex
	queue     []*shared.CompletionResponse
	errs      []error
	requests  []*shared.CompletionRequest
	callCount int
}

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{}
}

// Name returns the provider name.
func (fp *FakeProvider) Name() string { return "fake" }

// QueueResponse appends a canned response to the script.
func (fp *FakeProvider) QueueResponse(resp *shared.CompletionResponse) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.queue = append(fp.queue, resp)
	fp.errs = append(fp.errs, nil)
}

// QueueError appends an error turn to the script.
func (fp *FakeProvider) QueueError(err error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.queue = append(fp.queue, nil)
	fp.errs = append(fp.errs, err)
}

// QueueText is shorthand for a plain text response.
func (fp *FakeProvider) QueueText(text string) {
	fp.QueueResponse(&shared.CompletionResponse{Content: text})
}

// QueueToolCall is shorthand for a single tool-call response.
func (fp *FakeProvider) QueueToolCall(name string, args map[string]any) {
	fp.QueueResponse(&shared.CompletionResponse{
		ToolCalls: []shared.ToolCall{{ID: name, Name: name, Arguments: args}},
	})
}

// CallCount returns how many completions were requested.
func (fp *FakeProvider) CallCount() int {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.callCount
}

// LastRequest returns the most recent request, or nil.
func (fp *FakeProvider) LastRequest() *shared.CompletionRequest {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if len(fp.requests) == 0 {
		return nil
	}
	return fp.requests[len(fp.requests)-1]
}

// Requests returns all recorded requests.
func (fp *FakeProvider) Requests() []*shared.CompletionRequest {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.requests
}

// Complete pops the next scripted turn.
func (fp *FakeProvider) Complete(_ context.Context, req *shared.CompletionRequest) (*shared.CompletionResponse, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	fp.callCount++
	fp.requests = append(fp.requests, req)

	if len(fp.queue) == 0 {
		return nil, fmt.Errorf("fake provider: no scripted response for call %d", fp.callCount)
	}
	resp, err := fp.queue[0], fp.errs[0]
	fp.queue = fp.queue[1:]
	fp.errs = fp.errs[1:]
	if err != nil {
		return nil, err
	}
	return resp, nil
}
