package stream

import (
	"NopeNet/internal/model"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInputCodec(t *testing.T) {
	data, err := EncodeInput(InputMessage{Source: "feed:kddcup.data", Input: "0,tcp,http,SF,normal\n0,tcp,http,S0,neptune"})
	if err != nil {
		t.Fatalf("EncodeInput failed: %v", err)
	}

	msg, err := DecodeInput(data)
	if err != nil {
		t.Fatalf("DecodeInput failed: %v", err)
	}
	if msg.Source != "feed:kddcup.data" || msg.Input != "0,tcp,http,SF,normal\n0,tcp,http,S0,neptune" {
		t.Errorf("Unexpected decoded input: %+v", msg)
	}
}

func TestResultCodec(t *testing.T) {
	batch := &model.DetectionBatch{
		ID:        uuid.New(),
		CreatedAt: time.Date(2024, 4, 11, 8, 23, 15, 0, time.UTC),
		Results: []model.DetectionResult{
			{Timestamp: "2024-04-11 08:23:15", Protocol: "tcp", Flag: "S0", AttackType: model.AttackDOS, Confidence: 0.92, RawLabel: "neptune"},
			{Timestamp: "2024-04-11 08:23:16", Protocol: "udp", Flag: "SF", AttackType: model.AttackNormal, Confidence: 0.2, RawLabel: "normal"},
		},
		TotalPackets:    2,
		AttacksDetected: 1,
		ProcessingTime:  "1.2s",
		ByAttackType:    map[model.AttackType]int{model.AttackDOS: 1, model.AttackNormal: 1},
	}
	recs := []model.Recommendation{{ID: 1, AttackType: model.AttackDOS, Text: "rate limit"}}

	data, err := EncodeResult(ResultMessage{Batch: batch, Recommendations: recs})
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}
	msg, err := DecodeResult(data)
	if err != nil {
		t.Fatalf("DecodeResult failed: %v", err)
	}

	got := msg.Batch
	if got == nil {
		t.Fatal("Decoded batch is nil")
	}
	if got.ID != batch.ID || !got.CreatedAt.Equal(batch.CreatedAt) {
		t.Errorf("Identity mismatch: %v %v", got.ID, got.CreatedAt)
	}
	if got.TotalPackets != 2 || got.AttacksDetected != 1 || got.ProcessingTime != "1.2s" {
		t.Errorf("Totals mismatch: %+v", got)
	}
	if len(got.Results) != 2 || got.Results[0] != batch.Results[0] || got.Results[1] != batch.Results[1] {
		t.Errorf("Results mismatch: %+v", got.Results)
	}
	if got.ByAttackType[model.AttackDOS] != 1 {
		t.Errorf("Per-category counts mismatch: %v", got.ByAttackType)
	}
	if len(msg.Recommendations) != 1 || msg.Recommendations[0] != recs[0] {
		t.Errorf("Recommendations mismatch: %+v", msg.Recommendations)
	}
}

func TestDecodeInput_Garbage(t *testing.T) {
	if _, err := DecodeInput([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatal("Expected error for garbage payload")
	}
}
