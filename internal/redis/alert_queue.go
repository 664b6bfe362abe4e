package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"saheli/internal/domain"
	"saheli/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// AlertQueue buffers completed SOS activations for the webhook sender worker.
type AlertQueue struct {
	client *goredis.Client
	key    string
}

func NewAlertQueue(client *goredis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, rec domain.SOSAlertRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.SOSAlertRecord, error) {
	var rec domain.SOSAlertRecord

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return rec, e.ErrAlertQueueEmpty
		}
		return rec, err
	}
	if len(res) < 2 {
		return rec, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
