package messaging

import (
	"context"
	"time"

	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Publisher delivers one outbox payload to a broker topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(cfg config.KafkaConfig) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errs.Wrapf(err, "failed to write message to %s", topic)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
