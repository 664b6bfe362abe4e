package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"saheli/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ChatPubSub fans chat messages out to room subscribers. Delivery is
// at-least-once with no ordering or dedup guarantees; history lives in the
// record store.
type ChatPubSub struct {
	client *goredis.Client
	logger *slog.Logger
	prefix string
}

func NewChatPubSub(r *Redis, logger *slog.Logger) *ChatPubSub {
	return &ChatPubSub{
		client: r.Client,
		logger: logger,
		prefix: "chat:room:",
	}
}

func (p *ChatPubSub) Publish(ctx context.Context, msg domain.ChatMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.prefix+msg.RoomID.String(), b).Err()
}

// Subscribe returns a channel of messages for one room and a cancel func that
// closes the subscription. Messages that fail to decode are dropped with a log
// line rather than tearing down the subscription.
func (p *ChatPubSub) Subscribe(ctx context.Context, roomID uuid.UUID) (<-chan domain.ChatMessage, func()) {
	sub := p.client.Subscribe(ctx, p.prefix+roomID.String())
	out := make(chan domain.ChatMessage)

	go func() {
		defer close(out)
		for m := range sub.Channel() {
			var msg domain.ChatMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				p.logger.Warn("drop undecodable chat message", slog.Any("error", err))
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
