package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// APIConfig holds the listen addresses of the HTTP and gRPC servers.
type APIConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	GrpcListenAddr string `yaml:"grpc_listen_addr"`
}

// DetectorConfig tunes the classifier and the input boundary check.
type DetectorConfig struct {
	// MinFields is the minimum field count of the first input line.
	MinFields int `yaml:"min_fields"`
	// Seed pins the synthetic confidence generator. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// EngineConfig sizes the batch worker pool.
type EngineConfig struct {
	NumWorkers         int `yaml:"num_workers"`
	SizeOfBatchChannel int `yaml:"size_of_batch_channel"`
}

// StreamConfig holds NATS connection details.
type StreamConfig struct {
	NATSURL       string `yaml:"nats_url"`
	InputSubject  string `yaml:"input_subject"`
	ResultSubject string `yaml:"result_subject"`
	QueueGroup    string `yaml:"queue_group"`
}

// AlerterRule fires when a batch holds at least Threshold records of AttackType.
type AlerterRule struct {
	AttackType string `yaml:"attack_type"`
	Threshold  int    `yaml:"threshold"`
}

// AIAnalysisConfig toggles the AI section of alert notifications.
type AIAnalysisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"`
}

// AlerterConfig holds the alert rules.
type AlerterConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Rules      []AlerterRule    `yaml:"rules"`
	AIAnalysis AIAnalysisConfig `yaml:"ai_analysis"`
}

// SMTPConfig holds the mail server used by the email notifier.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// AIConfig holds the OpenAI-compatible endpoint used for alert analysis.
type AIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Detector DetectorConfig `yaml:"detector"`
	Engine   EngineConfig   `yaml:"engine"`
	Stream   StreamConfig   `yaml:"stream"`
	Alerter  AlerterConfig  `yaml:"alerter"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	AI       AIConfig       `yaml:"ai"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals YAML, fills in defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = ":8080"
	}
	if c.API.GrpcListenAddr == "" {
		c.API.GrpcListenAddr = ":9090"
	}
	if c.Detector.MinFields <= 0 {
		c.Detector.MinFields = 41
	}
	if c.Engine.NumWorkers <= 0 {
		c.Engine.NumWorkers = 4
	}
	if c.Engine.SizeOfBatchChannel <= 0 {
		c.Engine.SizeOfBatchChannel = 64
	}
	if c.Stream.NATSURL == "" {
		c.Stream.NATSURL = "nats://127.0.0.1:4222"
	}
	if c.Stream.InputSubject == "" {
		c.Stream.InputSubject = "nopenet.kdd.input"
	}
	if c.Stream.ResultSubject == "" {
		c.Stream.ResultSubject = "nopenet.kdd.results"
	}
	if c.Alerter.AIAnalysis.Timeout == "" {
		c.Alerter.AIAnalysis.Timeout = "60s"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gpt-4o-mini"
	}
}

func (c *Config) validate() error {
	for i, rule := range c.Alerter.Rules {
		switch rule.AttackType {
		case "DOS", "Probe", "R2L", "U2R":
		default:
			return fmt.Errorf("alerter rule %d: unknown attack_type '%s'", i, rule.AttackType)
		}
		if rule.Threshold <= 0 {
			return fmt.Errorf("alerter rule %d: threshold must be positive", i)
		}
	}
	if _, err := time.ParseDuration(c.Alerter.AIAnalysis.Timeout); err != nil {
		return fmt.Errorf("invalid ai_analysis timeout: %w", err)
	}
	return nil
}
