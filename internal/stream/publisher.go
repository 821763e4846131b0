package stream

import (
	"NopeNet/internal/config"
	"NopeNet/internal/model"
	"log"

	"github.com/nats-io/nats.go"
)

// Publisher publishes KDD input batches and classified results to NATS.
type Publisher struct {
	nc            *nats.Conn
	inputSubject  string
	resultSubject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.StreamConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL, nats.Name("nopenet-publisher"))
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return newPublisher(nc, cfg), nil
}

func newPublisher(nc *nats.Conn, cfg config.StreamConfig) *Publisher {
	return &Publisher{nc: nc, inputSubject: cfg.InputSubject, resultSubject: cfg.ResultSubject}
}

// PublishInput sends raw KDD text to the input subject.
func (p *Publisher) PublishInput(source, input string) error {
	data, err := EncodeInput(InputMessage{Source: source, Input: input})
	if err != nil {
		return err
	}
	return p.nc.Publish(p.inputSubject, data)
}

// PublishResult sends a classified batch and its recommendations to the result subject.
func (p *Publisher) PublishResult(batch *model.DetectionBatch, recs []model.Recommendation) error {
	data, err := EncodeResult(ResultMessage{Batch: batch, Recommendations: recs})
	if err != nil {
		return err
	}
	// Fire and forget; callers that need delivery call Flush
	return p.nc.Publish(p.resultSubject, data)
}

// Flush blocks until the server has processed everything published so far.
func (p *Publisher) Flush() error {
	return p.nc.Flush()
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		// Drain flushes pending publishes before closing
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
