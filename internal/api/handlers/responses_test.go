package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ann", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}{"name":"Bob"}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "занято")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "занято", body.Error)
}
