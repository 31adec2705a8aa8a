package redislib

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
	"github.com/t2bot/portfolio-repo/types"
)

const defaultListingTtl = 5 * time.Minute
const listingCacheName = "work_listing"

func listingKey(visibleOnly bool) string {
	if visibleOnly {
		return "portfolio:work:public"
	}
	return "portfolio:work:all"
}

func listingTtl() time.Duration {
	if secs := config.Get().Redis.ListingTtlSeconds; secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultListingTtl
}

func StoreWorkList(ctx rcontext.RequestContext, visibleOnly bool, items []*types.WorkItem) error {
	makeConnection()
	if ring == nil {
		return nil
	}

	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return ring.Set(ctx.Context, listingKey(visibleOnly), b, listingTtl()).Err()
}

// TryGetWorkList returns nil without an error when the listing is not cached
// or redis is not configured.
func TryGetWorkList(ctx rcontext.RequestContext, visibleOnly bool) ([]*types.WorkItem, error) {
	makeConnection()
	if ring == nil {
		return nil, nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Context, 5*time.Second)
	defer cancel()

	b, err := ring.Get(timeoutCtx, listingKey(visibleOnly)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.With(prometheus.Labels{"cache": listingCacheName}).Inc()
			return nil, nil
		}
		return nil, err
	}

	items := make([]*types.WorkItem, 0)
	if err = json.Unmarshal(b, &items); err != nil {
		ctx.Log.Warn("Discarding unreadable cached work listing: ", err)
		return nil, DeleteWorkLists(ctx)
	}
	metrics.CacheHits.With(prometheus.Labels{"cache": listingCacheName}).Inc()
	return items, nil
}

func DeleteWorkLists(ctx rcontext.RequestContext) error {
	makeConnection()
	if ring == nil {
		return nil
	}

	return ring.ForEachShard(ctx.Context, func(ctx2 context.Context, client *redis.Client) error {
		return client.Del(ctx2, listingKey(true), listingKey(false)).Err()
	})
}
