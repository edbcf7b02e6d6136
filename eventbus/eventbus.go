// Package eventbus publishes domain events to Kafka. Publishing is
// fire-and-forget: a broker problem is logged, never surfaced to the request
// that produced the event.
package eventbus

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/google/uuid"

	"giftwise/logger"
	"giftwise/models"
)

const TopicRunCreated = "suggestion.run.created"

// RunCreatedEvent is the payload emitted after a suggestion run persists.
type RunCreatedEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	RunID       string    `json:"run_id"`
	UserID      string    `json:"user_id"`
	RecipientID string    `json:"recipient_id"`
	ModelName   string    `json:"model_name"`
	IdeaCount   int       `json:"idea_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// KafkaEventBus wraps a confluent-kafka-go producer.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

// NewFromEnv creates a KafkaEventBus from KAFKA_BOOTSTRAP_SERVERS. When the
// variable is unset the bus is disabled and (nil, nil) is returned.
func NewFromEnv() (*KafkaEventBus, error) {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		return nil, nil
	}
	return NewKafkaEventBus(brokers)
}

// NewKafkaEventBus initializes the Kafka producer.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	producerCfg := &kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	}

	p, err := kafka.NewProducer(producerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	// Drain delivery reports so the producer queue never fills up.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("event delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// PublishRunCreated emits a suggestion.run.created event for the given run.
func (k *KafkaEventBus) PublishRunCreated(run *models.SuggestionRun) error {
	ev := RunCreatedEvent{
		EventID:     uuid.New().String(),
		Type:        TopicRunCreated,
		RunID:       run.ID.Hex(),
		UserID:      run.UserID,
		RecipientID: run.RecipientID.Hex(),
		ModelName:   run.ModelName,
		IdeaCount:   len(run.Ideas),
		CreatedAt:   run.CreatedAt,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	topic := TopicRunCreated
	return k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(run.UserID),
		Value:          payload,
	}, nil)
}

// Close flushes pending messages and shuts the producer down.
func (k *KafkaEventBus) Close() {
	k.Producer.Flush(5000)
	k.Producer.Close()
}
