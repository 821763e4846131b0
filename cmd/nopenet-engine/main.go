package main

import (
	"NopeNet/internal/ai"
	"NopeNet/internal/alerter"
	"NopeNet/internal/config"
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/manager"
	"NopeNet/internal/metrics"
	"NopeNet/internal/model"
	"NopeNet/internal/notification"
	"NopeNet/internal/stream"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	metricsAddr := flag.String("metrics", ":9102", "Address to expose Prometheus metrics on, empty to disable")
	flag.Parse()

	log.Println("Starting nopenet-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Build the pipeline
	var opts []classifier.Option
	if cfg.Detector.Seed != 0 {
		opts = append(opts, classifier.WithSeed(cfg.Detector.Seed))
	}
	c := classifier.New(opts...)
	m := metrics.New()

	alertr, err := newAlerter(cfg)
	if err != nil {
		log.Fatalf("Failed to create alerter: %v", err)
	}

	pub, err := stream.NewPublisher(cfg.Stream)
	if err != nil {
		log.Fatalf("Failed to connect publisher to NATS: %v", err)
	}
	defer pub.Close()

	mgr := manager.NewManager(cfg, c, alertr, m, pub)
	mgr.Start()

	// 3. Subscribe to input batches
	sub, err := stream.NewSubscriber(cfg.Stream)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	err = sub.Start(func(msg stream.InputMessage) {
		if err := mgr.Submit(manager.Job{Source: msg.Source, Input: msg.Input}); err != nil {
			log.Printf("Dropped batch from %s: %v", msg.Source, err)
		}
	})
	if err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	if *metricsAddr != "" {
		go func() {
			log.Printf("Metrics server starting on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, m.Handler()); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// 4. Wait for a shutdown signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutdown signal received, stopping engine...")
	sub.Close()
	mgr.Stop()
	log.Println("Shutdown complete.")
}

func newAlerter(cfg *config.Config) (*alerter.Alerter, error) {
	if !cfg.Alerter.Enabled {
		return nil, nil
	}

	var notifier model.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notification.NewEmailNotifier(cfg.SMTP)
	}
	if notifier == nil {
		log.Println("Alerter is enabled in config, but no notifiers are configured. Alerter will not run.")
		return nil, nil
	}

	var analyzer model.Analyzer
	if cfg.Alerter.AIAnalysis.Enabled {
		a, err := ai.NewDetectionAnalyzer(&cfg.AI)
		if err != nil {
			log.Printf("AI analysis disabled: %v", err)
		} else {
			analyzer = a
		}
	}

	alertr, err := alerter.NewAlerter(&cfg.Alerter, notifier, analyzer)
	if err != nil {
		return nil, err
	}
	log.Println("Alerter enabled and initialized.")
	return alertr, nil
}
