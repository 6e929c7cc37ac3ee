package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFeedbackAlwaysAcknowledges(t *testing.T) {
	h := NewFeedbackHandler(zerolog.Nop())

	body := `{"score": 4, "text": "helpful", "invocation_id": "inv-1", "user_id": "u-1"}`
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CollectFeedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestCollectFeedbackRejectsBadJSON(t *testing.T) {
	h := NewFeedbackHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.CollectFeedback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
