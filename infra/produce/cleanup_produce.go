package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CleanupQueue      = "storage.cleanup"
	CleanupExchange   = "storage.exchange"
	CleanupRoutingKey = "storage.cleanup"
)

// OrphanedObjectMessage describes an object-storage key whose synchronous
// deletion failed. The row it belonged to is already gone; the consumer retries
// the storage-side deletion.
type OrphanedObjectMessage struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	OwnerID   string `json:"owner_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// CleanupService publishes orphaned-object cleanup jobs
type CleanupService struct {
	channel *amqp.Channel
}

func InitCleanupService(channel *amqp.Channel) *CleanupService {
	service := &CleanupService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		CleanupExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Cleanup exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		CleanupQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Cleanup queue: " + err.Error())
	}

	err = channel.QueueBind(
		CleanupQueue,
		CleanupRoutingKey,
		CleanupExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Cleanup queue: " + err.Error())
	}

	return service
}

func (s *CleanupService) PublishOrphanedObject(ctx context.Context, msg OrphanedObjectMessage) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		CleanupExchange,
		CleanupRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
