package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/roosych/contactsbook/internal/models"
)

// StreamPublisher pushes aggregate import results to a redis stream so
// the web layer can surface notifications. Publication is best effort;
// callers log and ignore failures.
type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

// PublishImport records one finished import run.
func (p *StreamPublisher) PublishImport(ctx context.Context, userID string, scope models.Scope, processed int) error {
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"user_id":   userID,
			"scope":     scope.String(),
			"processed": strconv.Itoa(processed),
			"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
		},
	}).Err()
}
