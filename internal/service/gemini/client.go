// Package gemini is a thin client for the Gemini text-generation API. It is
// used only to pre-fill upload metadata, so every failure is absorbed into a
// fixed fallback value: callers never observe an error, only a string the
// service "declined" with.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/neotube/neotube-go/internal/metrics"
)

// Fallback strings returned instead of generated text. Fixed by contract:
// the upload flow compares nothing and retries nothing, it just uses
// whatever comes back.
const (
	DescriptionFallbackNoKey = "Automatic description unavailable (missing API key)."
	DescriptionFallbackEmpty = "Could not generate a description."
	DescriptionFallbackError = "Description generation failed."
)

// Tag fallbacks for the two failure classes.
var (
	TagsFallbackNoKey = []string{"Video", "NeoTube"}
	TagsFallbackError = []string{"Error", "API"}
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
)

// Config holds the configuration for the Gemini client.
type Config struct {
	APIKey  string        // Empty means unconfigured; calls return fallbacks without any I/O
	Model   string        // e.g. "gemini-2.5-flash"
	BaseURL string        // Override for tests
	Timeout time.Duration // Request timeout (default: 30 seconds)
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Client is a stateless request/response client. No retries, no caching,
// one in-flight request per caller.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a new Gemini client.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription produces a short promotional description for a video
// title. It never fails: with no API key it returns
// DescriptionFallbackNoKey, and any transport, status or decode problem
// yields DescriptionFallbackError.
func (c *Client) GenerateDescription(ctx context.Context, title string) string {
	if !c.Configured() {
		c.metrics.RecordTextGen(metrics.OutcomeUnconfigured)
		return DescriptionFallbackNoKey
	}

	text, err := c.generate(ctx, descriptionPrompt(title))
	if err != nil {
		c.log.Warn("description generation failed", zap.String("title", title), zap.Error(err))
		c.metrics.RecordTextGen(metrics.OutcomeFailed)
		return DescriptionFallbackError
	}
	if text == "" {
		c.metrics.RecordTextGen(metrics.OutcomeFailed)
		return DescriptionFallbackEmpty
	}
	c.metrics.RecordTextGen(metrics.OutcomeGenerated)
	return text
}

// GenerateTags produces a handful of tags for a video title, with the same
// failure absorption as GenerateDescription.
func (c *Client) GenerateTags(ctx context.Context, title string) []string {
	if !c.Configured() {
		c.metrics.RecordTextGen(metrics.OutcomeUnconfigured)
		return TagsFallbackNoKey
	}

	text, err := c.generate(ctx, tagsPrompt(title))
	if err != nil || text == "" {
		if err != nil {
			c.log.Warn("tag generation failed", zap.String("title", title), zap.Error(err))
		}
		c.metrics.RecordTextGen(metrics.OutcomeFailed)
		return TagsFallbackError
	}

	parts := strings.Split(text, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		c.metrics.RecordTextGen(metrics.OutcomeFailed)
		return TagsFallbackError
	}
	c.metrics.RecordTextGen(metrics.OutcomeGenerated)
	return tags
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text), nil
}

func descriptionPrompt(title string) string {
	return fmt.Sprintf("Write a short, catchy, SEO-friendly description for a video titled: %q. Include relevant hashtags at the end.", title)
}

func tagsPrompt(title string) string {
	return fmt.Sprintf("Generate a comma-separated list of 5 tags for a video titled: %q. Reply with the keywords only.", title)
}
