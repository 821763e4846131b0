package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yamlData := `
api:
  listen_addr: ":18080"
detector:
  seed: 42
engine:
  num_workers: 2
stream:
  nats_url: "nats://nats:4222"
  queue_group: "engines"
alerter:
  enabled: true
  rules:
    - attack_type: DOS
      threshold: 10
    - attack_type: U2R
      threshold: 1
`
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.API.ListenAddr != ":18080" {
		t.Errorf("Expected listen addr ':18080', got '%s'", cfg.API.ListenAddr)
	}
	if cfg.API.GrpcListenAddr != ":9090" {
		t.Errorf("Expected default grpc addr ':9090', got '%s'", cfg.API.GrpcListenAddr)
	}
	if cfg.Detector.Seed != 42 || cfg.Detector.MinFields != 41 {
		t.Errorf("Unexpected detector config: %+v", cfg.Detector)
	}
	if cfg.Engine.NumWorkers != 2 || cfg.Engine.SizeOfBatchChannel != 64 {
		t.Errorf("Unexpected engine config: %+v", cfg.Engine)
	}
	if cfg.Stream.InputSubject != "nopenet.kdd.input" || cfg.Stream.QueueGroup != "engines" {
		t.Errorf("Unexpected stream config: %+v", cfg.Stream)
	}
	if len(cfg.Alerter.Rules) != 2 || cfg.Alerter.Rules[1].AttackType != "U2R" {
		t.Errorf("Unexpected alerter rules: %+v", cfg.Alerter.Rules)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("does/not/exist.yaml"); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestParse_InvalidRules(t *testing.T) {
	tests := map[string]string{
		"unknown type":   "alerter:\n  rules:\n    - attack_type: worm\n      threshold: 1\n",
		"zero threshold": "alerter:\n  rules:\n    - attack_type: DOS\n      threshold: 0\n",
		"bad timeout":    "alerter:\n  ai_analysis:\n    timeout: soon\n",
		"bad yaml":       "api: [",
	}
	for name, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Stream.ResultSubject != "nopenet.kdd.results" || cfg.AI.Model == "" {
		t.Errorf("Defaults not applied: %+v", cfg)
	}
}
