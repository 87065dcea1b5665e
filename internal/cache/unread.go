// Package cache хранит горячий счетчик непрочитанных уведомлений в redis.
// Кеш best-effort: при любой ошибке redis источником истины остается база.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	unreadKeyPrefix  = "safevault:notifications:unread:"
	defaultUnreadTTL = 5 * time.Minute
)

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

type UnreadCounter struct {
	rdb *redis.Client
	ttl time.Duration
	l   *logrus.Entry
}

func NewUnreadCounter(rdb *redis.Client, l *logrus.Logger) *UnreadCounter {
	return &UnreadCounter{
		rdb: rdb,
		ttl: defaultUnreadTTL,
		l:   l.WithField("component", "cache"),
	}
}

// Get возвращает закешированный счетчик. Второе значение false - промах или ошибка.
func (c *UnreadCounter) Get(ctx context.Context, userID int64) (int64, bool) {
	val, err := c.rdb.Get(ctx, unreadKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.l.WithError(err).Debug("unread counter get failed")
		}
		return 0, false
	}
	count, parseErr := strconv.ParseInt(val, 10, 64)
	if parseErr != nil {
		return 0, false
	}
	return count, true
}

func (c *UnreadCounter) Set(ctx context.Context, userID, count int64) {
	if err := c.rdb.Set(ctx, unreadKey(userID), count, c.ttl).Err(); err != nil {
		c.l.WithError(err).Debug("unread counter set failed")
	}
}

// Invalidate сбрасывает счетчик после любой записи, меняющей число непрочитанных.
func (c *UnreadCounter) Invalidate(ctx context.Context, userID int64) {
	if err := c.rdb.Del(ctx, unreadKey(userID)).Err(); err != nil {
		c.l.WithError(err).Debug("unread counter invalidate failed")
	}
}

func unreadKey(userID int64) string {
	return fmt.Sprintf("%s%d", unreadKeyPrefix, userID)
}
