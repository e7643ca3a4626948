package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"portal/config"
)

// Message is a keyed event payload; the value is JSON-encoded on send.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Producer publishes events to a topic.
type Producer interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
}

type producerImpl struct {
	config    *config.Config
	transport *kafkaGo.Transport
	address   net.Addr
}

func New(config *config.Config) Producer {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	transport := &kafkaGo.Transport{
		SASL: mechanism,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producerImpl{
		config:    config,
		transport: transport,
		address:   kafkaGo.TCP(config.Kafka.Brokers...),
	}
}

func (k *producerImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return fmt.Errorf("topic name cannot be empty")
	}

	kafkaMessages := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		kafkaMessage, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		kafkaMessages = append(kafkaMessages, kafkaMessage)
	}

	writer := &kafkaGo.Writer{
		Addr:      k.address,
		Topic:     topic,
		Balancer:  &kafkaGo.LeastBytes{},
		Transport: k.transport,
	}
	defer writer.Close()

	if err := writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to write messages to Kafka")

		return fmt.Errorf("failed to write messages to topic %s: %w", topic, err)
	}

	return nil
}
