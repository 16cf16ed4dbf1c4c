package notifications

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes messages to the welcome topic. The writer manages
// its own connections and is safe for concurrent use.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokerAddr string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokerAddr),
			Topic:                  WelcomeTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
