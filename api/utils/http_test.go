// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapHandlerFunc(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"ok", nil, http.StatusOK, ""},
		{"bad request", BadRequest(errors.New("bad input")), http.StatusBadRequest, "bad input\n"},
		{"wrapped", errors.WithMessage(NotFound(errors.New("gone")), "lookup"), http.StatusNotFound, "lookup: gone\n"},
		{"no cause", HTTPError(nil, http.StatusConflict), http.StatusConflict, "Conflict\n"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := WrapHandlerFunc(func(http.ResponseWriter, *http.Request) error { return tt.err })

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestParseJSON(t *testing.T) {
	var v struct {
		A uint8 `json:"a"`
	}
	require.NoError(t, ParseJSON(strings.NewReader(`{"a":7}`), &v))
	assert.Equal(t, uint8(7), v.A)

	assert.Error(t, ParseJSON(strings.NewReader(`{"a":256}`), &v))
	assert.Error(t, ParseJSON(strings.NewReader(`{"a":-1}`), &v))
	assert.Error(t, ParseJSON(strings.NewReader(`{"b":1}`), &v))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, M{"k": 1}))

	assert.Equal(t, JSONContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k":1}`, rec.Body.String())
}
