package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const defaultTopic = "service-order-events"

func getKafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	return strings.Split(brokers, ",")
}

// NewKafkaWriter builds the writer for the domain-event topic.
func NewKafkaWriter() *kafka.Writer {
	topic := os.Getenv("KAFKA_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultTopic
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(getKafkaBrokerURLs()...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher writes domain events to Kafka, keyed by order so consumers
// see each order's events in sequence.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event entities.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s-%s", event.Type, event.OrderID)),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Str("order_id", event.OrderID).Msg("event publish failed")
		return err
	}

	log.Debug().Str("type", string(event.Type)).Str("order_id", event.OrderID).Msg("event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
