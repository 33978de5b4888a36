package slotstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage хранит слоты как строковые ключи Redis с префиксом
type RedisStorage struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStorage создает хранилище поверх клиента Redis
func NewRedisStorage(client redis.Cmdable, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) Get(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrInvalidSlotName
	}

	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get %s: %v", ErrRead, s.prefix+name, err)
	}
	return data, nil
}

func (s *RedisStorage) Set(ctx context.Context, name string, value []byte) error {
	if name == "" {
		return ErrInvalidSlotName
	}

	// Без TTL: бронирования живут, пока их не удалят
	if err := s.client.Set(ctx, s.prefix+name, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set %s: %v", ErrWrite, s.prefix+name, err)
	}
	return nil
}
