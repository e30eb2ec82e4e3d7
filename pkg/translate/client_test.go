package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echoServer translates every submitted name by upper-casing it, preserving
// order.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		var resp translationResponse
		for _, text := range r.Form["text"] {
			resp.Translations = append(resp.Translations, struct {
				Text string `json:"text"`
			}{Text: strings.ToUpper(text)})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestTranslateNamesPreservesOrder(t *testing.T) {
	t.Parallel()

	server := echoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "test-key", zap.NewNop())
	names := []string{"alpha", "beta", "gamma"}

	translated, err := client.TranslateNames(context.Background(), names, "EN", "DE")
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA", "BETA", "GAMMA"}, translated)
}

func TestTranslateNamesEmptyInput(t *testing.T) {
	t.Parallel()

	client := NewClient("http://unused.invalid", "test-key", zap.NewNop())

	translated, err := client.TranslateNames(context.Background(), nil, "EN", "DE")
	require.NoError(t, err)
	assert.Empty(t, translated)
}

func TestTranslateNamesRequestSizeCeiling(t *testing.T) {
	t.Parallel()

	client := NewClient("http://unused.invalid", "test-key", zap.NewNop())

	big := strings.Repeat("x", MaxRequestBytes)
	_, err := client.TranslateNames(context.Background(), []string{big, "y"}, "EN", "DE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestTranslateNamesAtExactCeiling(t *testing.T) {
	t.Parallel()

	server := echoServer(t)
	defer server.Close()

	client := NewClient(server.URL, "test-key", zap.NewNop())
	names := []string{strings.Repeat("a", MaxRequestBytes)}

	translated, err := client.TranslateNames(context.Background(), names, "EN", "DE")
	require.NoError(t, err)
	require.Len(t, translated, 1)
}

func TestTranslateNamesLengthMismatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":[{"text":"only one"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", zap.NewNop())
	_, err := client.TranslateNames(context.Background(), []string{"a", "b"}, "EN", "DE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2")
}

func TestTranslateNamesServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", zap.NewNop())
	_, err := client.TranslateNames(context.Background(), []string{"a"}, "EN", "DE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
