package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/limits"
)

var srv *http.Server
var waitGroup = &sync.WaitGroup{}

// Handler builds the complete request pipeline, including the global rate
// limit and Sentry capture.
func Handler() http.Handler {
	handler := buildRoutes()

	if config.Get().RateLimit.Enabled {
		logrus.Debug("Enabling rate limit")
		handler = tollbooth.LimitHandler(limits.GetRequestLimiter(), handler)
	}

	// Note: we bind Sentry here to ensure we capture *everything*
	sentryHandler := sentryhttp.New(sentryhttp.Options{})
	return sentryHandler.Handle(handler)
}

func Init() *sync.WaitGroup {
	waitGroup.Add(1)
	start()
	return waitGroup
}

func start() {
	address := net.JoinHostPort(config.Get().General.BindAddress, strconv.Itoa(config.Get().General.Port))

	server := &http.Server{
		Addr:              address,
		Handler:           Handler(),
		ReadHeaderTimeout: 30 * time.Second,
	}
	srv = server

	go func() {
		//goland:noinspection HttpUrlsUsage
		logrus.WithField("address", address).Info("Started up. Listening at http://" + address)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			logrus.Fatal(err)
		}
	}()
}

func Reload() {
	// Stop the server first, then bring it back without touching the wait group
	shutdown()
	start()
}

func Stop() {
	if srv == nil {
		return
	}
	shutdown()
	waitGroup.Done()
}

func shutdown() {
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			panic(err)
		}
		srv = nil
	}
}
