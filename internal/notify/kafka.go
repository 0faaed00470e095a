package notify

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"donburi-house/internal/domain"
)

// KafkaSink forwards notifications to a broker topic so an external display
// channel can consume the feed. Attached only when a broker is configured.
type KafkaSink struct {
	Writer *kafka.Writer
}

func NewKafkaSink(writer *kafka.Writer) *KafkaSink {
	return &KafkaSink{Writer: writer}
}

func (s *KafkaSink) Deliver(n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return s.Writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(n.ID),
		Value: payload,
	})
}
