package aigateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"
)

func completionBody(content string) string {
	return `{"choices": [{"message": {"content": ` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func newTestClient(t *testing.T, baseURL string, retries int) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		MaxRetries: retries,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestCompleteSendsInstructionAndPayload(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{"intent_classification": "DIRECT_RESPONSE_SALE"}`)))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	content, err := client.Complete(context.Background(), CompletionRequest{
		Model:       "router/model-a",
		Instruction: "You are the Intent Analyst.",
		UserContent: "Diwali sale 20% off",
		Temperature: 0.3,
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !strings.Contains(content, "DIRECT_RESPONSE_SALE") {
		t.Fatalf("unexpected completion %q", content)
	}
	if captured.Model != "router/model-a" {
		t.Fatalf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected message layout %+v", captured.Messages)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", UserContent: "x"})
	if !errors.Is(err, ErrNoCompletion) {
		t.Fatalf("expected no-completion error, got %v", err)
	}
}

func TestCompleteRetriesOnServerError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(completionBody("recovered")))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2)
	content, err := client.Complete(context.Background(), CompletionRequest{Model: "m", UserContent: "x"})
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if content != "recovered" {
		t.Fatalf("unexpected completion %q", content)
	}
	if attempts.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts.Load())
	}
}

func TestCompleteDoesNotRetryClientErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", UserContent: "x"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if attempts.Load() != 1 {
		t.Fatalf("expected a single attempt for a 401, got %d", attempts.Load())
	}
}

func TestStatusErrorBodyTruncatesOnRuneBoundary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		// The odd leading byte lands the 512-byte cap inside a 2-byte rune.
		w.Write([]byte("e" + strings.Repeat("ü", 600)))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", UserContent: "x"})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if len(statusErr.Body) > 512 {
		t.Fatalf("expected body capped at 512 bytes, got %d", len(statusErr.Body))
	}
	if !utf8.ValidString(statusErr.Body) {
		t.Fatalf("expected valid utf-8 body, got %q", statusErr.Body)
	}
}

func TestGenerateImageWithReference(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices": [{"message": {"images": [{"image_url": {"url": "https://cdn.example.test/out.png"}}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	url, err := client.GenerateImage(context.Background(), ImageRequest{
		Model:             "router/image-model",
		Prompt:            "festive storefront",
		ReferenceImageURL: "https://uploads.example.test/inspiration/user-1/ref.png",
	})
	if err != nil {
		t.Fatalf("generate image failed: %v", err)
	}
	if url != "https://cdn.example.test/out.png" {
		t.Fatalf("unexpected image url %q", url)
	}
	if len(captured.Modalities) != 2 {
		t.Fatalf("expected image+text modalities, got %v", captured.Modalities)
	}
	raw, err := json.Marshal(captured.Messages[0].Content)
	if err != nil {
		t.Fatalf("re-marshal content: %v", err)
	}
	if !strings.Contains(string(raw), "image_url") {
		t.Fatal("expected a multimodal message carrying the reference image")
	}
}

func TestGenerateImageMissingImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(completionBody("text only, no image")))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0)
	_, err := client.GenerateImage(context.Background(), ImageRequest{Model: "m", Prompt: "p"})
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("expected no-image error, got %v", err)
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(Config{APIKey: "k"}); err == nil {
		t.Fatal("expected missing base url to fail")
	}
	if _, err := New(Config{BaseURL: "http://gateway"}); err == nil {
		t.Fatal("expected missing api key to fail")
	}
}
