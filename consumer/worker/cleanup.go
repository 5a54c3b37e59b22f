package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/infra/produce"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CleanupConsumer retries object-storage deletions that failed during the
// synchronous request path. The database rows are already gone by the time a
// message lands here; all that remains is removing the orphaned object.
type CleanupConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *CleanupConsumer {
	return &CleanupConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.CleanupQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register cleanup consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Started listening for orphaned objects on queue: %s", produce.CleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Channel closed")
					return
				}
				c.handleOrphanedObject(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *CleanupConsumer) handleOrphanedObject(ctx context.Context, msg amqp.Delivery) {
	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Received message: %s", string(msg.Body))

	var payload produce.OrphanedObjectMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	if payload.Bucket == "" || payload.ObjectKey == "" {
		c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Dropping message with empty bucket or object key")
		_ = msg.Nack(false, false)
		return
	}

	maxRetries := 3
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = c.infra.Minio.DeleteObject(ctx, payload.Bucket, payload.ObjectKey)
		if err == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Deleted orphaned object %s/%s (owner %s)", payload.Bucket, payload.ObjectKey, payload.OwnerID)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Attempt %d/%d failed for %s/%s: %v", attempt, maxRetries, payload.Bucket, payload.ObjectKey, err)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	// After max retries, reject and requeue
	c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed after %d attempts, requeueing message", maxRetries)
	_ = msg.Nack(false, true)
}
