package limits

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/t2bot/portfolio-repo/common/config"
)

// TtlStore is the subset of go-cache the window limiter needs. Entries are
// expected to disappear on their own once their window has passed.
type TtlStore interface {
	Get(k string) (interface{}, bool)
	Set(k string, x interface{}, d time.Duration)
}

type window struct {
	count   int
	resetAt time.Time
}

// WindowLimiter allows a fixed number of hits per key per window. The first hit
// after a window has ended opens a new window.
type WindowLimiter struct {
	maxRequests int
	window      time.Duration
	store       TtlStore
	lock        sync.Mutex
	now         func() time.Time
}

func NewWindowLimiter(maxRequests int, window time.Duration, store TtlStore) *WindowLimiter {
	if store == nil {
		store = cache.New(window, window*2)
	}
	return &WindowLimiter{
		maxRequests: maxRequests,
		window:      window,
		store:       store,
		now:         time.Now,
	}
}

// Allow records a hit for key, returning whether it is within the limit and
// when the current window resets.
func (l *WindowLimiter) Allow(key string) (bool, time.Time) {
	l.lock.Lock()
	defer l.lock.Unlock()

	now := l.now()
	var w *window
	if v, ok := l.store.Get(key); ok {
		w = v.(*window)
	}

	if w == nil || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(l.window)}
		l.store.Set(key, w, l.window)
		return true, w.resetAt
	}

	if w.count >= l.maxRequests {
		return false, w.resetAt
	}

	w.count++
	return true, w.resetAt
}

var authLimiter *WindowLimiter
var authLimiterConf config.WindowLimitConfig
var authLimiterLock sync.Mutex

// GetAuthLimiter returns the limiter for login and registration attempts, or
// nil when it is disabled. It is rebuilt when its configuration changes.
func GetAuthLimiter() *WindowLimiter {
	authLimiterLock.Lock()
	defer authLimiterLock.Unlock()

	conf := config.Get().Auth.RateLimit
	if !conf.Enabled {
		return nil
	}
	if authLimiter == nil || conf != authLimiterConf {
		authLimiter = NewWindowLimiter(conf.MaxRequests, time.Duration(conf.WindowSeconds)*time.Second, nil)
		authLimiterConf = conf
	}
	return authLimiter
}
