package ai

import (
	"NopeNet/internal/config"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewDetectionAnalyzer_RequiresKey(t *testing.T) {
	if _, err := NewDetectionAnalyzer(&config.AIConfig{}); err == nil {
		t.Fatal("Expected error without API key")
	}
}

func TestDetectionAnalyzer_AnalyzeDetections(t *testing.T) {
	var gotSystem, gotPrompt, gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotModel = req.Model
		for _, m := range req.Messages {
			switch m.Role {
			case "system":
				gotSystem = m.Content
			case "user":
				gotPrompt = m.Content
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"**Severity:** high"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	a, err := NewDetectionAnalyzer(&config.AIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Model: "test-model"})
	if err != nil {
		t.Fatalf("NewDetectionAnalyzer failed: %v", err)
	}

	out, err := a.AnalyzeDetections(context.Background(), "DOS: 120 records")
	if err != nil {
		t.Fatalf("AnalyzeDetections failed: %v", err)
	}
	if out != "**Severity:** high" {
		t.Errorf("Unexpected output: %q", out)
	}
	if gotModel != "test-model" {
		t.Errorf("Expected model 'test-model', got '%s'", gotModel)
	}
	if !strings.Contains(gotPrompt, "DOS: 120 records") {
		t.Errorf("Prompt does not contain alert data: %q", gotPrompt)
	}
	if !strings.Contains(gotSystem, "U2R (user to root)") {
		t.Errorf("System message does not describe the KDD categories: %q", gotSystem)
	}
}

func TestDetectionAnalyzer_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	a, _ := NewDetectionAnalyzer(&config.AIConfig{APIKey: "test", BaseURL: srv.URL, Model: "m"})
	if _, err := a.AnalyzeDetections(context.Background(), "x"); err == nil {
		t.Fatal("Expected error when no choices are returned")
	}
}

func TestDetectionAnalyzer_EmptyInput(t *testing.T) {
	a, _ := NewDetectionAnalyzer(&config.AIConfig{APIKey: "test", BaseURL: "http://127.0.0.1:0", Model: "m"})
	if _, err := a.AnalyzeDetections(context.Background(), "  \n"); err == nil {
		t.Fatal("Expected error for empty alert data")
	}
}

func TestDetectionAnalyzer_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	a, _ := NewDetectionAnalyzer(&config.AIConfig{APIKey: "test", BaseURL: srv.URL, Model: "m"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeDetections(ctx, "DOS: 1 records")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if !strings.Contains(err.Error(), "AI request canceled") {
		t.Errorf("Unexpected error message: %v", err)
	}
}
