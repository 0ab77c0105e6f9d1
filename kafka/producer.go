package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Topics published by the service.
const (
	TopicRoleUpdated    = "user.role.updated"
	TopicSurveyCreated  = "survey.created"
	TopicPaymentCreated = "payment.created"
)

// Producer wraps a sarama SyncProducer. A nil Producer (or one whose
// broker never came up) drops events instead of failing the request.
type Producer struct {
	sp sarama.SyncProducer
}

// NewProducer connects to the broker, retrying a few times the way the
// broker tends to need during compose startup. Returns nil when broker is
// unset or unreachable; publishing stays best-effort either way.
func NewProducer(broker string) *Producer {
	if broker == "" {
		return nil
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	var sp sarama.SyncProducer
	var err error
	for i := 1; i <= 5; i++ {
		sp, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Printf("Kafka producer connected to %s", broker)
			return &Producer{sp: sp}
		}
		log.Printf("Failed to connect to Kafka (try %d/5): %v", i, err)
		time.Sleep(3 * time.Second)
	}

	log.Printf("Could not connect to Kafka after 5 attempts: %v", err)
	return nil
}

// Publish sends an {event_type, data} envelope. Failures are logged, never
// propagated: events are advisory, request handling does not depend on
// them.
func (p *Producer) Publish(topic, eventType string, data any) {
	if p == nil || p.sp == nil {
		return
	}

	event := map[string]any{
		"event_type": eventType,
		"data":       data,
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(messageBytes),
	}
	if _, _, err := p.sp.SendMessage(msg); err != nil {
		log.Printf("Failed to send %s event: %v", eventType, err)
	}
}

func (p *Producer) Close() {
	if p != nil && p.sp != nil {
		p.sp.Close()
	}
}
