package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketclient/base/backoff"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
)

// The constant
const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	dialAttempts = 4
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

func newPool(uri, password string, param ...RedisParam) *redis.Pool {
	maxIdle := 16
	maxActive := 64
	if len(param) > 0 && param[0].PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu*param[0].PoolMultiplier/4) + 1
		maxActive = int(cpu*param[0].PoolMultiplier) + 1
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis dials once, or up to dialAttempts times with Retry, and pings
// before handing out the pool
func ConnectRedis(c ctx.Ctx, uri, password string, param ...RedisParam) (*redis.Pool, error) {
	p := newPool(uri, password, param...)

	attempts := 1
	if len(param) > 0 && param[0].Retry {
		attempts = dialAttempts
	}
	ping := func(attempt int) (bool, error) {
		conn, err := p.GetContext(c)
		if err != nil {
			c.WithFields(log.Fields{"redisURI": uri, "err": err, "attempt": attempt}).Warn("fail to dial Redis")
			return false, nil
		}
		defer conn.Close()
		if _, err := conn.Do("PING"); err != nil {
			c.WithFields(log.Fields{"redisURI": uri, "err": err, "attempt": attempt}).Warn("fail to ping Redis")
			return false, nil
		}
		return true, nil
	}
	if err := backoff.Retry(c, backoff.NewExponential(time.Second, 4*time.Second), attempts, ping); err != nil {
		p.Close()
		c.WithFields(log.Fields{"redisURI": uri, "err": err}).Error("fail to connect Redis")
		return nil, err
	}

	c.WithField("redisURI", uri).Info("redis connected")
	return p, nil
}
