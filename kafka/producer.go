package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Thurzix/Product-Pit-Stop/common/logger"
	"github.com/Thurzix/Product-Pit-Stop/models"
)

// ProducerAPI is the publishing surface the checkout service depends on.
type ProducerAPI interface {
	SendOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	logger.Log.Info("Kafka producer initialized",
		zap.String("topic", topic), zap.Strings("brokers", brokers))
	return &Producer{writer: w, topic: topic}
}

// SendOrderPlaced publishes the event keyed by user so one user's orders stay
// ordered on a single partition.
func (p *Producer) SendOrderPlaced(ctx context.Context, evt models.OrderPlacedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.UserID.String()),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
