package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFoldsErrorIntoEnvelope(t *testing.T) {
	r := ErrorResult(errors.New("boom"))
	assert.JSONEq(t, `{"status":"error","error_message":"boom"}`, r.Content())
}

func TestSuccessResultInjectsStatus(t *testing.T) {
	r := SuccessResult(map[string]any{"value": 1})
	assert.JSONEq(t, `{"status":"success","value":1}`, r.Content())
}

func TestSuccessResultKeepsExplicitStatus(t *testing.T) {
	r := SuccessResult(map[string]any{"status": "partial"})
	assert.JSONEq(t, `{"status":"partial"}`, r.Content())
}

func TestInputAccessors(t *testing.T) {
	in := &ToolInput{Data: map[string]any{
		"s":   "text",
		"b":   true,
		"obj": map[string]any{"k": "v"},
	}}
	assert.Equal(t, "text", in.String("s"))
	assert.Equal(t, "", in.String("missing"))
	assert.True(t, in.Bool("b", false))
	assert.True(t, in.Bool("missing", true))
	assert.Equal(t, map[string]any{"k": "v"}, in.Object("obj"))
	assert.Nil(t, in.Object("missing"))
}
