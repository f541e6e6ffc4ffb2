package persistent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"unvaultd/pkg/logger"
	"unvaultd/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRedis answers every command in-process, so no server is dialled.
type scriptedRedis struct {
	publishErr error
	pipelined  []string
	published  []string
}

func (h *scriptedRedis) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *scriptedRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "publish" {
			h.published = append(h.published, fmt.Sprint(cmd.Args()[1]))
			return h.publishErr
		}
		return nil
	}
}

func (h *scriptedRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			h.pipelined = append(h.pipelined, cmd.Name())
		}
		return nil
	}
}

func newScriptedInbox(h *scriptedRedis) InboxRepository {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(h)
	return NewInboxRepository(client, logger.NewNop())
}

func TestInboxPush_StoresAndPublishes(t *testing.T) {
	h := &scriptedRedis{}
	inbox := newScriptedInbox(h)

	err := inbox.Push(context.Background(), entity.Notification{ID: "n1", UserID: "u1", Type: "like"})

	require.NoError(t, err)
	assert.Contains(t, h.pipelined, "lpush")
	assert.Contains(t, h.pipelined, "ltrim")
	assert.Contains(t, h.pipelined, "expire")
	assert.Equal(t, []string{"notifications:u1"}, h.published)
}

func TestInboxPush_PublishFailureKeepsStoredNotification(t *testing.T) {
	h := &scriptedRedis{publishErr: errors.New("connection reset")}
	inbox := newScriptedInbox(h)

	// An error here would make the consumer requeue and store it twice.
	err := inbox.Push(context.Background(), entity.Notification{ID: "n1", UserID: "u1", Type: "follow"})

	assert.NoError(t, err)
	assert.Contains(t, h.pipelined, "lpush")
	assert.Len(t, h.published, 1)
}
