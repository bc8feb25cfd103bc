package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      interface{}
		expectedBody string
	}{
		{"Object payload", http.StatusOK, map[string]int{"a": 1}, `{"a":1}`},
		{"Error payload", http.StatusConflict, Response{Error: "boom"}, `{"error":"boom"}`},
		{"No content drops body", http.StatusNoContent, Response{Error: "empty"}, ``},
		{"Unmarshalable payload", http.StatusOK, make(chan int), ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithJSON(w, tt.code, tt.payload)

			if tt.name == "Unmarshalable payload" {
				assert.Equal(t, http.StatusInternalServerError, w.Code)
				return
			}
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusBadRequest, "invalid request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}
