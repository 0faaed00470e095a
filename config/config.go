package config

import (
	"os"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	// PushEnabled is the initial state of the notification bus; the menu
	// can toggle it at runtime.
	PushEnabled bool

	// KafkaBroker, when set, attaches a Kafka delivery sink to the bus.
	KafkaBroker string
	NotifyTopic string

	// NotifyReservationCompleted turns on the reservation-completed
	// emission that the source system never had.
	NotifyReservationCompleted bool
}

func Load() Config {
	return Config{
		PushEnabled:                envBool("PUSH_ENABLED", false),
		KafkaBroker:                os.Getenv("KAFKA_BROKER"),
		NotifyTopic:                envDefault("NOTIFY_TOPIC", "restaurant-notifications"),
		NotifyReservationCompleted: envBool("NOTIFY_RESERVATION_COMPLETED", false),
	}
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
