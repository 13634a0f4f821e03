package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"personal-site/internal/domain"
)

// redisCreateScript guarda el registro y su posición en una sola operación:
// o se escriben las dos claves o ninguna.
const redisCreateScript = `
local hashType = redis.call("TYPE", KEYS[1]).ok
local listType = redis.call("TYPE", KEYS[2]).ok
if (hashType ~= "none" and hashType ~= "hash") or (listType ~= "none" and listType ~= "list") then
  return redis.error_reply("WRONGTYPE message keys hold the wrong kind of value")
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
return redis.call("RPUSH", KEYS[2], ARGV[1])
`

type redisMessageClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisMessageRepository guarda cada mensaje como JSON en un hash y el orden
// de inserción en una lista aparte.
type RedisMessageRepository struct {
	client   redisMessageClient
	hashKey  string
	orderKey string
}

func NewRedisMessageRepository(client *redis.Client, prefix string) *RedisMessageRepository {
	return newRedisMessageRepository(client, prefix)
}

func newRedisMessageRepository(client redisMessageClient, prefix string) *RedisMessageRepository {
	return &RedisMessageRepository{
		client:   client,
		hashKey:  prefix + domain.MessagesCollection,
		orderKey: prefix + domain.MessagesCollection + ":order",
	}
}

func (r *RedisMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	ids, err := r.client.LRange(ctx, r.orderKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Message{}, nil
	}

	values, err := r.client.HMGet(ctx, r.hashKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// entrada en la lista sin registro en el hash
			continue
		}
		msg, err := decodeRedisMessage(raw)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *RedisMessageRepository) FindByID(ctx context.Context, id string) ([]domain.Message, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	raw, err := r.client.HGet(ctx, r.hashKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	msg, err := decodeRedisMessage(raw)
	if err != nil {
		return nil, err
	}
	return []domain.Message{msg}, nil
}

func (r *RedisMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	message = stamp(message, time.Now())
	payload, err := json.Marshal(message)
	if err != nil {
		return domain.Message{}, err
	}
	keys := []string{r.hashKey, r.orderKey}
	if err := r.client.Eval(ctx, redisCreateScript, keys, message.ID, string(payload)).Err(); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (r *RedisMessageRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeRedisMessage(raw string) (domain.Message, error) {
	var msg domain.Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", ErrCorruptMessageData, err)
	}
	return msg, nil
}
