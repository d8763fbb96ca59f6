package redis

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

// Pool is satisfied by *redis.Pool
type Pool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

type impl struct {
	pool Pool
}

func NewRedis(pool Pool) provider.Provider {
	return &impl{pool}
}

func (im *impl) do(c ctx.Ctx, cmd string, args ...interface{}) (interface{}, error) {
	conn, err := im.pool.GetContext(c)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.Do(cmd, args...)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := redis.Bytes(im.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.Get failed")
		return nil, 0, err
	}
	ms, err := redis.Int64(im.do(c, "PTTL", key))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.PTTL failed")
		return nil, 0, err
	}
	switch {
	case ms == -2:
		// expired between the two calls
		return nil, 0, provider.ErrNotFound
	case ms < 0:
		return val, 0, nil
	}
	return val, time.Duration(ms) * time.Millisecond, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	args := []interface{}{key, value}
	if ttl > 0 {
		args = append(args, "PX", ttl.Milliseconds())
	}
	if _, err := im.do(c, "SET", args...); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.do(c, "DEL", key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis.Del failed")
		return err
	}
	return nil
}

// Len is the size of the whole redis db, not only this client's keys
func (im *impl) Len() int64 {
	n, err := redis.Int64(im.do(ctx.Background(), "DBSIZE"))
	if err != nil {
		log.Log().WithField("err", err).Warn("redis.DBSIZE failed")
		return 0
	}
	return n
}
