package pool

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
)

var ImageQueue *Queue

func Init() {
	var err error
	if ImageQueue, err = NewQueue(config.Get().Uploads.NumWorkers, "images"); err != nil {
		sentry.CaptureException(err)
		logrus.Error("Error setting up images queue")
		logrus.Fatal(err)
	}
}

func AdjustSize() {
	ImageQueue.pool.Tune(config.Get().Uploads.NumWorkers)
}

func Drain() {
	if ImageQueue != nil {
		ImageQueue.pool.Release()
	}
}

// DoImageWork runs fn on the image queue, or inline when the queue has not been
// started.
func DoImageWork(ctx context.Context, fn func() error) error {
	if ImageQueue == nil {
		return fn()
	}
	return ImageQueue.Do(ctx, fn)
}
