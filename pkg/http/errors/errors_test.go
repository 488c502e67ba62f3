package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondEnvelopes(t *testing.T) {
	cases := []struct {
		respond func(http.ResponseWriter)
		status  int
		message string
	}{
		{RespondBadRequest, http.StatusBadRequest, "bad request"},
		{RespondNotFound, http.StatusNotFound, "resource not found"},
		{RespondMethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
		{RespondUnprocessable, http.StatusUnprocessableEntity, "unprocessable"},
		{RespondInternalError, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.respond(rec)

		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, float64(tc.status), body["error"])
		assert.Equal(t, tc.message, body["message"])
		assert.NotContains(t, body, "details")
	}
}

func TestRespondErrorWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondErrorWithDetails(rec, http.StatusBadRequest, map[string]interface{}{"missing": "answer"})

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "answer", body.Details["missing"])
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, MsgUpstreamError, MessageFor(http.StatusBadGateway))
	assert.Equal(t, MsgUnavailable, MessageFor(http.StatusServiceUnavailable))
	assert.Equal(t, MsgInternalError, MessageFor(http.StatusTeapot))
}
