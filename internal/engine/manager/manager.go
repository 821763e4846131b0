package manager

import (
	"NopeNet/internal/alerter"
	"NopeNet/internal/config"
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/kdd"
	"NopeNet/internal/engine/recommender"
	"NopeNet/internal/metrics"
	"NopeNet/internal/model"
	"context"
	"errors"
	"log"
	"sync"
)

// ErrStopped is returned by Submit once the manager is shutting down.
var ErrStopped = errors.New("manager is stopped")

// Job is one block of raw KDD text to classify.
type Job struct {
	Source string
	Input  string
}

// ResultPublisher receives every classified batch.
type ResultPublisher interface {
	PublishResult(batch *model.DetectionBatch, recs []model.Recommendation) error
}

// Manager runs a pool of workers that validate, classify, recommend and alert
// on submitted jobs.
type Manager struct {
	classifier *classifier.Classifier
	alerter    *alerter.Alerter
	metrics    *metrics.Metrics
	publisher  ResultPublisher
	minFields  int

	// Worker pool for concurrent batch processing
	jobChannel chan Job
	numWorkers int
	workerWg   sync.WaitGroup

	// done is closed first on Stop so blocked submitters give up
	done     chan struct{}
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
}

// NewManager creates a new Manager. alertr, m and publisher may be nil.
func NewManager(cfg *config.Config, c *classifier.Classifier, alertr *alerter.Alerter, m *metrics.Metrics, publisher ResultPublisher) *Manager {
	return &Manager{
		classifier: c,
		alerter:    alertr,
		metrics:    m,
		publisher:  publisher,
		minFields:  cfg.Detector.MinFields,
		jobChannel: make(chan Job, cfg.Engine.SizeOfBatchChannel),
		numWorkers: cfg.Engine.NumWorkers,
		done:       make(chan struct{}),
	}
}

// Start launches the worker pool.
func (m *Manager) Start() {
	m.workerWg.Add(m.numWorkers)
	for i := 0; i < m.numWorkers; i++ {
		go m.worker()
	}
	log.Printf("Manager started with %d workers.", m.numWorkers)
}

// Submit queues a job, blocking while the channel is full. It returns
// ErrStopped if the manager stops before the job is queued.
func (m *Manager) Submit(job Job) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.stopped {
		return ErrStopped
	}
	select {
	case m.jobChannel <- job:
		return nil
	case <-m.done:
		return ErrStopped
	}
}

// Stop gracefully shuts down the manager after every queued job is processed.
// Calling it more than once is safe.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		log.Println("Manager stopping...")
		// 1. Release submitters waiting on a full queue, then stop accepting new jobs.
		close(m.done)
		m.mu.Lock()
		m.stopped = true
		close(m.jobChannel)
		m.mu.Unlock()

		// 2. Wait for all workers to finish processing buffered jobs.
		log.Println("Waiting for workers to finish...")
		m.workerWg.Wait()

		log.Println("Manager stopped.")
	})
}

func (m *Manager) worker() {
	defer m.workerWg.Done()
	for job := range m.jobChannel {
		m.process(job)
	}
}

func (m *Manager) process(job Job) {
	// 1. Reject input that fails the KDD boundary check
	if err := kdd.Validate(job.Input, m.minFields); err != nil {
		log.Printf("Rejected batch from %s: %v", job.Source, err)
		m.metrics.ObserveInvalid(job.Source)
		return
	}

	// 2. Classify and summarize
	batch := m.classifier.Classify(job.Input)
	recs := recommender.Recommend(batch.Results)
	m.metrics.ObserveBatch(job.Source, batch)
	log.Printf("Classified batch %s from %s: %d records, %d attacks.", batch.ID, job.Source, batch.TotalPackets, batch.AttacksDetected)

	// 3. Alert, then hand the result downstream
	if m.alerter != nil {
		alerts, err := m.alerter.Evaluate(context.Background(), batch)
		if err != nil {
			log.Printf("ERROR: Failed to deliver alerts for batch %s: %v", batch.ID, err)
		}
		for _, a := range alerts {
			m.metrics.ObserveAlert(a.AttackType)
		}
	}

	if m.publisher != nil {
		if err := m.publisher.PublishResult(batch, recs); err != nil {
			log.Printf("Failed to publish result for batch %s: %v", batch.ID, err)
		}
	}
}
