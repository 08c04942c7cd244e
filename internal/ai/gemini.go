// Package ai provides an AI fallback for commands nothing else can fix
package ai

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mewisme/wtf/internal/logger"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 15 * time.Second
	endpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	maxResponseBytes = 1 << 20
)

const prompt = `You are a shell command correction tool. The user typed a command that failed, most likely because of a typo. Reply with ONLY the corrected command, no explanation, no markdown, no code fences. If you cannot determine a correction, reply with exactly: UNKNOWN

Failed command: %s`

// Client calls the Gemini API for command fixes.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	endpoint   string
}

// Option configures a Client
type Option func(*Client)

// WithModel overrides the model name
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithEndpoint overrides the API URL, for proxies and tests
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// NewClient creates a Gemini client. The key comes from config or the
// GOOGLE_API_KEY environment variable.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured; run 'wtf set-api-key' or set GOOGLE_API_KEY")
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport(),
			Timeout:   defaultTimeout,
		},
		apiKey: apiKey,
		model:  defaultModel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// transport returns an HTTP transport tuned for a single short-lived
// API call.
func transport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// generationConfig keeps the model deterministic and the answer short;
// a corrected command line never needs more than one line of output.
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FixCommand asks the model for a corrected command. It returns an
// error when the model declines or answers with something unusable.
func (c *Client) FixCommand(ctx context.Context, input string) (string, error) {
	log := logger.With("ai")

	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("nothing to fix")
	}

	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: fmt.Sprintf(prompt, input)}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			MaxOutputTokens: 100,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.endpoint
	if url == "" {
		url = fmt.Sprintf(endpointFormat, c.model)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read AI response: %w", err)
	}

	log.Debug("AI response", "status", resp.StatusCode, "elapsed", time.Since(start))

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("AI API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API returned status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI returned no candidates")
	}

	fixed := cleanResponse(parsed.Candidates[0].Content.Parts[0].Text)
	if fixed == "" || fixed == "UNKNOWN" {
		return "", fmt.Errorf("AI could not determine a correction")
	}
	if fixed == input {
		return "", fmt.Errorf("AI returned the input unchanged")
	}

	return fixed, nil
}

// cleanResponse strips markdown fencing and whitespace the model may
// add despite the prompt.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```sh")
	s = strings.TrimPrefix(s, "```bash")
	s = strings.TrimPrefix(s, "```shell")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(s, "`")

	// Keep only the first line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
