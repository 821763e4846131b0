package manager

import (
	"NopeNet/internal/alerter"
	"NopeNet/internal/config"
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/kdd"
	"NopeNet/internal/metrics"
	"NopeNet/internal/model"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakePublisher struct {
	mu      sync.Mutex
	batches []*model.DetectionBatch
	recs    [][]model.Recommendation
}

func (f *fakePublisher) PublishResult(batch *model.DetectionBatch, recs []model.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, batch)
	f.recs = append(f.recs, recs)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeNotifier) Send(subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

func withLabel(label string) string {
	fields := strings.Split(kdd.SampleRecord, ",")
	fields[len(fields)-1] = label
	return strings.Join(fields, ",")
}

func TestManager_ProcessesJobs(t *testing.T) {
	// 1. Build the pipeline with fakes
	cfg := config.Default()
	cfg.Engine.NumWorkers = 3
	cfg.Alerter.Rules = []config.AlerterRule{{AttackType: "U2R", Threshold: 1}}

	notifier := &fakeNotifier{}
	alertr, err := alerter.NewAlerter(&cfg.Alerter, notifier, nil)
	if err != nil {
		t.Fatalf("Failed to create alerter: %v", err)
	}
	pub := &fakePublisher{}
	m := metrics.New()
	mgr := NewManager(cfg, classifier.New(classifier.WithSeed(1)), alertr, m, pub)

	// 2. Submit valid and invalid jobs
	mgr.Start()
	jobs := []Job{
		{Source: "test", Input: withLabel("normal")},
		{Source: "test", Input: withLabel("neptune") + "\n" + withLabel("satan")},
		{Source: "test", Input: withLabel("rootkit")},
		{Source: "test", Input: "0,tcp,http,SF,neptune"},
		{Source: "test", Input: ""},
	}
	for _, j := range jobs {
		if err := mgr.Submit(j); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	mgr.Stop()

	// 3. Verify
	if len(pub.batches) != 3 {
		t.Fatalf("Expected 3 published batches, got %d", len(pub.batches))
	}
	totalRecords := 0
	for i, b := range pub.batches {
		totalRecords += b.TotalPackets
		if len(pub.recs[i]) == 0 {
			t.Errorf("Batch %s published without recommendations", b.ID)
		}
	}
	if totalRecords != 4 {
		t.Errorf("Expected 4 records across batches, got %d", totalRecords)
	}
	if notifier.calls != 1 {
		t.Errorf("Expected 1 alert notification for the rootkit batch, got %d", notifier.calls)
	}

	expected := `
# HELP nopenet_invalid_batches_total Total KDD batches rejected by input validation
# TYPE nopenet_invalid_batches_total counter
nopenet_invalid_batches_total{source="test"} 2
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "nopenet_invalid_batches_total"); err != nil {
		t.Errorf("Unexpected invalid batch metric: %v", err)
	}
}

func TestManager_SubmitAfterStop(t *testing.T) {
	mgr := NewManager(config.Default(), classifier.New(), nil, nil, nil)
	mgr.Start()
	mgr.Stop()
	mgr.Stop()

	if err := mgr.Submit(Job{Source: "late", Input: kdd.SampleRecord}); !errors.Is(err, ErrStopped) {
		t.Fatalf("Expected ErrStopped, got %v", err)
	}
}

func TestManager_StopReleasesBlockedSubmit(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.SizeOfBatchChannel = 1
	// Workers are never started, so the queue stays full after one job.
	mgr := NewManager(cfg, classifier.New(), nil, nil, nil)
	if err := mgr.Submit(Job{Source: "test", Input: kdd.SampleRecord}); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}

	submitErr := make(chan error, 1)
	go func() {
		submitErr <- mgr.Submit(Job{Source: "test", Input: kdd.SampleRecord})
	}()

	stopped := make(chan struct{})
	go func() {
		mgr.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return while a submit was blocked on a full queue")
	}
	select {
	case err := <-submitErr:
		if !errors.Is(err, ErrStopped) {
			t.Errorf("Expected ErrStopped for the blocked submit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Blocked submit was not released by Stop")
	}
}
