package ai

import (
	"NopeNet/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// systemPrompt fixes the analyst role and the KDD category vocabulary so the
// user message only has to carry the alert data.
const systemPrompt = "You are a senior network security analyst reviewing output of the NopeNet KDD Cup 99 classifier. " +
	"Attack categories follow the KDD convention: DOS (denial of service), Probe (surveillance and scanning), " +
	"R2L (remote to local) and U2R (user to root). " +
	"Answer in Markdown with a short assessment of the likely threat, its severity, and next steps for investigation."

// DetectionAnalyzer implements the model.Analyzer interface using an OpenAI-compatible API.
type DetectionAnalyzer struct {
	model  string
	client *openai.Client
}

// NewDetectionAnalyzer creates a new instance of DetectionAnalyzer.
func NewDetectionAnalyzer(cfg *config.AIConfig) (*DetectionAnalyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is not configured")
	}

	// Point the client at a compatible endpoint when one is configured
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &DetectionAnalyzer{
		model:  cfg.Model,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// AnalyzeDetections asks the model for an analysis of the alert summary.
func (a *DetectionAnalyzer) AnalyzeDetections(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("no alert data to analyze")
	}

	// 1. Role and vocabulary go in the system message, the alert data in the user message
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "--- Alert Data ---\n" + input + "\n--- End of Alert Data ---"},
		},
	}

	// 2. Send the request; the caller's context bounds how long we wait
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", requestError(err)
	}

	// 3. Take the first choice
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// requestError distinguishes context expiry from errors reported by the API.
func requestError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("AI request timeout: %w", err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("AI request canceled: %w", err)
	default:
		return fmt.Errorf("OpenAI API error: %w", err)
	}
}
