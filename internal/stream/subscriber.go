package stream

import (
	"NopeNet/internal/config"
	"log"

	"github.com/nats-io/nats.go"
)

// InputHandler processes a received KDD input batch.
type InputHandler func(msg InputMessage)

// Subscriber consumes KDD input batches from a NATS subject.
type Subscriber struct {
	nc         *nats.Conn
	sub        *nats.Subscription
	subject    string
	queueGroup string
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(cfg config.StreamConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL, nats.Name("nopenet-subscriber"))
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{nc: nc, subject: cfg.InputSubject, queueGroup: cfg.QueueGroup}, nil
}

// Start subscribes to the input subject and hands every decoded batch to handler.
// Subscribers sharing a queue group split the batches between them.
func (s *Subscriber) Start(handler InputHandler) error {
	// 1. Decode each message before it reaches the engine
	cb := func(msg *nats.Msg) {
		in, err := DecodeInput(msg.Data)
		if err != nil {
			log.Printf("Error decoding input batch: %v", err)
			return
		}
		handler(in)
	}

	// 2. Join the queue group when one is configured, otherwise every subscriber sees every batch
	var (
		sub *nats.Subscription
		err error
	)
	if s.queueGroup != "" {
		sub, err = s.nc.QueueSubscribe(s.subject, s.queueGroup, cb)
	} else {
		sub, err = s.nc.Subscribe(s.subject, cb)
	}
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for batches...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
