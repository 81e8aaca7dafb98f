package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGenerator_RoundTrip(t *testing.T) {
	var got describeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(describeResponse{Text: "alert text"})
	}))
	defer srv.Close()

	gen := &HTTPGenerator{URL: srv.URL}
	text, err := gen.Describe(context.Background(), "Pesto", "sauce", 12, 20)
	require.NoError(t, err)
	assert.Equal(t, "alert text", text)
	assert.Equal(t, describeRequest{Name: "Pesto", Category: "sauce", Stock: 12, Threshold: 20}, got)
}

func TestHTTPGenerator_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := &HTTPGenerator{URL: srv.URL}
	_, err := gen.Describe(context.Background(), "Pesto", "sauce", 12, 20)
	assert.Error(t, err)
}

func TestHTTPGenerator_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(describeResponse{})
	}))
	defer srv.Close()

	gen := &HTTPGenerator{URL: srv.URL}
	_, err := gen.Describe(context.Background(), "Pesto", "sauce", 12, 20)
	assert.Error(t, err)
}
