package redislib

import (
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/t2bot/portfolio-repo/common/config"
)

var connectionLock = &sync.Once{}
var ring *redis.Ring

func makeConnection() {
	if ring != nil {
		return
	}

	connectionLock.Do(func() {
		conf := config.Get().Redis
		if !conf.Enabled || len(conf.Shards) == 0 {
			return
		}
		addresses := make(map[string]string)
		for _, c := range conf.Shards {
			addresses[c.Name] = c.Address
		}
		ring = redis.NewRing(&redis.RingOptions{
			Addrs:       addresses,
			DialTimeout: 10 * time.Second,
			DB:          conf.DbNum,
		})
	})
}

// UseRing replaces the shared connection. Used by tests.
func UseRing(r *redis.Ring) {
	Stop()
	connectionLock.Do(func() {})
	ring = r
}

func Reconnect() {
	Stop()
	makeConnection()
}

func Stop() {
	if ring != nil {
		_ = ring.Close()
	}
	ring = nil
	connectionLock = &sync.Once{}
}
