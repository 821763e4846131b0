package main

import (
	"NopeNet/internal/config"
	"NopeNet/internal/stream"
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	filePath := flag.String("file", "", "Path to a KDD-formatted file to publish (required)")
	batchSize := flag.Int("batch", 100, "Lines per published batch, 0 publishes the whole file at once")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -file flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to NATS
	pub, err := stream.NewPublisher(cfg.Stream)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	// 3. Publish the file and wait for the server to take everything
	source := "feed:" + filepath.Base(*filePath)
	published, err := publishFile(pub, source, *filePath, *batchSize)
	if err != nil {
		log.Fatalf("Failed to publish %s: %v", *filePath, err)
	}
	if err := pub.Flush(); err != nil {
		log.Fatalf("Failed to flush NATS connection: %v", err)
	}
	log.Printf("Published %d batch(es) from %s to '%s'.", published, *filePath, cfg.Stream.InputSubject)
}

// publishFile splits the file into batches of batchSize non-empty lines.
func publishFile(pub *stream.Publisher, source, path string, batchSize int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// KDD lines are short, but allow long ones rather than failing the scan
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		lines     []string
		published int
	)
	flush := func() error {
		if len(lines) == 0 {
			return nil
		}
		if err := pub.PublishInput(source, strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("failed to publish batch: %w", err)
		}
		published++
		if published%100 == 0 {
			log.Printf("%d batches published...", published)
		}
		lines = lines[:0]
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if batchSize > 0 && len(lines) >= batchSize {
			if err := flush(); err != nil {
				return published, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return published, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return published, flush()
}
