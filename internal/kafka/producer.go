package kafka

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start runs the publish loop. Writes are decoupled from callers so a slow
// broker never blocks the request path; failed writes are logged, not
// retried. The loop exits once Close drains the inbox.
func (p *Producer) Start(_ context.Context) {
	go func() {
		defer close(p.closeCh)
		for m := range p.inbox {
			// background context: buffered messages still flush during shutdown
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				log.Printf("kafka write: %v", err)
			}
		}
		_ = p.w.Close()
	}()
}

func (p *Producer) Publish(key, value []byte, headers ...kafka.Header) {
	p.inbox <- kafka.Message{
		Key:     key,
		Value:   value,
		Time:    time.Now(),
		Headers: headers,
	}
}

// Close stops accepting messages; the loop flushes what is buffered and exits.
func (p *Producer) Close() { close(p.inbox) }

// WaitClosed blocks until the publish loop has drained and exited.
func (p *Producer) WaitClosed() { <-p.closeCh }
