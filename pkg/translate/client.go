// Package translate renames directories using a remote translation API.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MaxRequestBytes is the ceiling on the combined UTF-8 byte length of the
// names submitted in a single translation call.
const MaxRequestBytes = 131072

// DefaultEndpoint is the translation service URL used when none is
// configured.
const DefaultEndpoint = "https://api-free.deepl.com/v2/translate"

// Client performs translation calls against a remote service.
type Client struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client for the given endpoint and API key. An empty
// endpoint selects DefaultEndpoint.
func NewClient(endpoint, apiKey string, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type translationResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// TranslateNames submits names for translation and returns the translated
// names in the same order and length as the input. The whole call fails if
// the combined UTF-8 byte length of the input exceeds MaxRequestBytes.
func (c *Client) TranslateNames(ctx context.Context, names []string, sourceLang, targetLang string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	total := 0
	for _, name := range names {
		total += len(name)
	}
	if total > MaxRequestBytes {
		return nil, fmt.Errorf("request size %d bytes exceeds the %d byte limit", total, MaxRequestBytes)
	}

	form := url.Values{}
	for _, name := range names {
		form.Add("text", name)
	}
	form.Set("source_lang", sourceLang)
	form.Set("target_lang", targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.APIKey)

	c.logger.Debug("Submitting translation request",
		zap.Int("names", len(names)),
		zap.Int("requestBytes", total),
		zap.String("sourceLang", sourceLang),
		zap.String("targetLang", targetLang))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("translation service returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed translationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(parsed.Translations) != len(names) {
		return nil, fmt.Errorf("translation response has %d entries, expected %d", len(parsed.Translations), len(names))
	}

	translated := make([]string, len(names))
	for i, t := range parsed.Translations {
		translated[i] = t.Text
	}
	return translated, nil
}
