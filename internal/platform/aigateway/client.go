package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// Client talks to an OpenAI-compatible chat-completions gateway. Every
// pipeline stage and the image synthesis call go through this one client;
// stages differ only in model, temperature and response modality.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	logger     *slog.Logger
}

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Logger     *slog.Logger
}

// StatusError reports a non-2xx gateway response. Retryable statuses are
// retried inside the client; whatever escapes is an upstream failure.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai gateway returned status %d: %s", e.StatusCode, e.Body)
}

var ErrNoCompletion = errors.New("ai gateway returned no completion choices")
var ErrNoImage = errors.New("ai gateway returned no generated image")

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("ai gateway base url is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("ai gateway api key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: retries,
		logger:     logger,
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	Modalities  []string  `json:"modalities,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Images  []struct {
				ImageURL imageRef `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CompletionRequest is a single text round trip: a role instruction, a user
// payload (usually serialized JSON from the previous stage), and sampling
// temperature.
type CompletionRequest struct {
	Model       string
	Instruction string
	UserContent string
	Temperature float64
}

// Complete returns the raw completion text. Callers own parsing; the client
// guarantees only transport and status handling.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatRequest{
		Model: req.Model,
		Messages: []message{
			{Role: "system", Content: req.Instruction},
			{Role: "user", Content: req.UserContent},
		},
		Temperature: req.Temperature,
	}

	resp, err := c.send(ctx, body)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// ImageRequest asks for an image modality completion. When ReferenceImageURL
// is set the prompt and the reference travel in one multimodal message.
type ImageRequest struct {
	Model             string
	Prompt            string
	ReferenceImageURL string
}

// GenerateImage returns the generated image reference (URL or data URI).
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	var content any = req.Prompt
	if strings.TrimSpace(req.ReferenceImageURL) != "" {
		content = []contentPart{
			{Type: "text", Text: req.Prompt + "\n\nUse this image as inspiration:"},
			{Type: "image_url", ImageURL: &imageRef{URL: req.ReferenceImageURL}},
		}
	}

	body := chatRequest{
		Model:      req.Model,
		Messages:   []message{{Role: "user", Content: content}},
		Modalities: []string{"image", "text"},
	}

	resp, err := c.send(ctx, body)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Images) == 0 {
		return "", ErrNoImage
	}
	url := resp.Choices[0].Message.Images[0].ImageURL.URL
	if strings.TrimSpace(url) == "" {
		return "", ErrNoImage
	}
	return url, nil
}

func (c *Client) send(ctx context.Context, body chatRequest) (chatResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return chatResponse{}, fmt.Errorf("encode gateway request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return chatResponse{}, ctx.Err()
			case <-time.After(backoff):
			}
			c.logger.Warn("retrying ai gateway call",
				"event", "aigateway_retry",
				"module", "internal/platform/aigateway",
				"layer", "platform",
				"model", body.Model,
				"attempt", attempt,
			)
		}

		resp, err := c.doRequest(ctx, payload)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var statusErr *StatusError
		if !errors.As(err, &statusErr) || !retryable(statusErr.StatusCode) {
			return chatResponse{}, err
		}
	}
	return chatResponse{}, lastErr
}

func (c *Client) doRequest(ctx context.Context, payload []byte) (chatResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return chatResponse{}, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return chatResponse{}, fmt.Errorf("ai gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 16<<20))
	if err != nil {
		return chatResponse{}, fmt.Errorf("read gateway response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return chatResponse{}, &StatusError{
			StatusCode: httpResp.StatusCode,
			Body:       truncate(string(raw), 512),
		}
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return chatResponse{}, fmt.Errorf("decode gateway response: %w", err)
	}
	if resp.Error != nil && resp.Error.Message != "" {
		return chatResponse{}, fmt.Errorf("ai gateway error: %s", resp.Error.Message)
	}
	return resp, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
