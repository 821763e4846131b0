package classifier

import (
	"NopeNet/internal/engine/kdd"
	"NopeNet/internal/model"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the format of DetectionResult.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	normalConfidence     = 0.2
	minAttackConfidence  = 0.7
	attackConfidenceSpan = 0.3
)

// Clock supplies the base time of a batch.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// RandSource yields values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock replaces the wall clock used for record timestamps.
func WithClock(c Clock) Option {
	return func(cl *Classifier) { cl.clock = c }
}

// WithRandSource replaces the source of the synthetic confidence and processing time.
func WithRandSource(r RandSource) Option {
	return func(cl *Classifier) { cl.rng = r }
}

// WithSeed uses a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(cl *Classifier) { cl.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithRules replaces the default attack table.
func WithRules(rules []Rule) Option {
	return func(cl *Classifier) { cl.rules = rules }
}

// Classifier turns raw KDD text into a DetectionBatch. It holds no per-call
// state and may be shared between goroutines.
type Classifier struct {
	rules []Rule
	clock Clock

	mu  sync.Mutex // guards rng
	rng RandSource
}

// New creates a Classifier with the default rules, the wall clock and a
// time-seeded random source unless overridden by opts.
func New(opts ...Option) *Classifier {
	seed := uint64(time.Now().UnixNano())
	c := &Classifier{
		rules: DefaultRules(),
		clock: ClockFunc(time.Now),
		rng:   rand.New(rand.NewPCG(seed, seed>>1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Match returns the category for a raw label.
func (c *Classifier) Match(label string) model.AttackType {
	return match(c.rules, label)
}

// Classify parses raw into one record per non-empty line, in input order.
// It never fails; short lines degrade to "unknown" fields.
func (c *Classifier) Classify(raw string) *model.DetectionBatch {
	lines := kdd.SplitLines(raw)
	// One clock read per batch; records are spaced a second apart from it
	base := c.clock.Now()

	batch := &model.DetectionBatch{
		ID:           uuid.New(),
		CreatedAt:    base,
		Results:      make([]model.DetectionResult, 0, len(lines)),
		TotalPackets: len(lines),
		ByAttackType: make(map[model.AttackType]int),
	}

	for i, line := range lines {
		// Short lines still produce a record with "unknown" fields
		rec := kdd.ParseLine(line)
		attackType := c.Match(rec.RawLabel)

		confidence := normalConfidence
		if attackType != model.AttackNormal {
			confidence = minAttackConfidence + c.draw()*attackConfidenceSpan
			batch.AttacksDetected++
		}
		batch.ByAttackType[attackType]++

		batch.Results = append(batch.Results, model.DetectionResult{
			Timestamp:  base.Add(time.Duration(i) * time.Second).Format(TimestampLayout),
			Protocol:   rec.Protocol,
			Flag:       rec.Flag,
			AttackType: attackType,
			Confidence: confidence,
			RawLabel:   rec.RawLabel,
		})
	}

	// Synthetic, drawn after every record so seeded runs stay reproducible
	batch.ProcessingTime = fmt.Sprintf("%.1fs", c.draw()*2+0.5)

	return batch
}

func (c *Classifier) draw() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}
