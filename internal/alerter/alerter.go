package alerter

import (
	"NopeNet/internal/config"
	"NopeNet/internal/engine/recommender"
	"NopeNet/internal/model"
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
)

// Alert is a single rule triggered by a batch.
type Alert struct {
	AttackType model.AttackType
	Count      int
	Threshold  int
}

// Message renders the alert as an HTML fragment.
func (a Alert) Message(batch *model.DetectionBatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h3>%s threshold exceeded</h3>", html.EscapeString(string(a.AttackType)))
	fmt.Fprintf(&b, "<p>Batch <code>%s</code>: %d of %d records classified as %s (threshold %d).</p>",
		batch.ID, a.Count, batch.TotalPackets, html.EscapeString(string(a.AttackType)), a.Threshold)
	if rec, ok := recommender.For(a.AttackType); ok {
		fmt.Fprintf(&b, "<p><strong>Recommendation:</strong> %s</p>", html.EscapeString(rec.Text))
	}
	return b.String()
}

// text is the plain summary handed to the AI analyzer.
func (a Alert) text(batch *model.DetectionBatch) string {
	return fmt.Sprintf("%s: %d of %d records (threshold %d), batch processed at %s",
		a.AttackType, a.Count, batch.TotalPackets, a.Threshold, batch.CreatedAt.Format(time.RFC3339))
}

// Alerter evaluates classified batches against per-category thresholds and
// sends a consolidated notification when any rule fires.
type Alerter struct {
	rules    []config.AlerterRule
	notifier model.Notifier

	// AI analysis components
	aiEnabled bool
	analyzer  model.Analyzer
	aiTimeout time.Duration
}

// NewAlerter creates a new Alerter instance. analyzer may be nil.
func NewAlerter(cfg *config.AlerterConfig, notifier model.Notifier, analyzer model.Analyzer) (*Alerter, error) {
	timeout := 60 * time.Second
	if cfg.AIAnalysis.Timeout != "" {
		d, err := time.ParseDuration(cfg.AIAnalysis.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ai_analysis timeout for alerter: %w", err)
		}
		timeout = d
	}

	a := &Alerter{
		rules:     cfg.Rules,
		notifier:  notifier,
		aiEnabled: cfg.AIAnalysis.Enabled && analyzer != nil,
		analyzer:  analyzer,
		aiTimeout: timeout,
	}
	if cfg.AIAnalysis.Enabled && analyzer == nil {
		log.Println("AI analysis is enabled in config, but no analyzer is available. Alerts will be sent without it.")
	}
	return a, nil
}

// Check returns the rules triggered by batch without notifying anyone.
func (a *Alerter) Check(batch *model.DetectionBatch) []Alert {
	var alerts []Alert
	for _, rule := range a.rules {
		attackType := model.AttackType(rule.AttackType)
		count := batch.ByAttackType[attackType]
		if count >= rule.Threshold {
			alerts = append(alerts, Alert{AttackType: attackType, Count: count, Threshold: rule.Threshold})
		}
	}
	return alerts
}

// Evaluate checks batch against the rules and sends one notification for
// everything that fired. The triggered alerts are returned even when
// delivery fails.
func (a *Alerter) Evaluate(ctx context.Context, batch *model.DetectionBatch) ([]Alert, error) {
	alerts := a.Check(batch)
	if len(alerts) == 0 {
		return nil, nil
	}

	log.Printf("Alerter evaluation completed for batch %s. %d alert(s) triggered.", batch.ID, len(alerts))

	// Nobody to tell, so skip building the body and the AI round trip
	if a.notifier == nil {
		return alerts, nil
	}

	// 1. Collect one HTML section per alert plus a plain summary for the AI
	messages := make([]string, 0, len(alerts))
	summaries := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		messages = append(messages, alert.Message(batch))
		summaries = append(summaries, alert.text(batch))
	}

	body := "<h1>NopeNet Alert Summary</h1>" +
		"<p>The following alerts were triggered by the last detection batch:</p><hr>" +
		strings.Join(messages, "<hr>")

	// 2. Append the AI analysis when available; a failure only drops the section
	aiAnalysis, err := a.getAIAnalysis(ctx, strings.Join(summaries, "\n"))
	if err != nil {
		log.Printf("Failed to get AI analysis: %v", err)
	} else if aiAnalysis != "" {
		rendered := markdown.ToHTML([]byte(aiAnalysis), nil, nil)
		body += "<hr><h2>AI-Powered Analysis</h2>" + string(rendered)
	}

	// 3. Send a single consolidated notification
	subject := fmt.Sprintf("NopeNet Alert Summary (%d Triggered)", len(alerts))
	if err := a.notifier.Send(subject, body); err != nil {
		return alerts, fmt.Errorf("failed to send alert notification: %w", err)
	}
	log.Printf("Alert notification sent for batch %s.", batch.ID)
	return alerts, nil
}

func (a *Alerter) getAIAnalysis(ctx context.Context, alertContent string) (string, error) {
	if !a.aiEnabled {
		return "", nil
	}

	log.Println("Requesting AI analysis for alert summary...")
	ctx, cancel := context.WithTimeout(ctx, a.aiTimeout)
	defer cancel()

	out, err := a.analyzer.AnalyzeDetections(ctx, alertContent)
	if err != nil {
		return "", fmt.Errorf("AI analysis failed: %w", err)
	}
	return out, nil
}
