package model

import (
	"context"
)

// Analyzer defines the standard interface for an AI analyzer.
type Analyzer interface {
	// AnalyzeDetections receives a text summary of detections and returns the model's analysis.
	AnalyzeDetections(ctx context.Context, input string) (string, error)
}
