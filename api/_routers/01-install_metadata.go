package _routers

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/util"
)

type metadataCtxKey string

const requestIdCtxKey metadataCtxKey = "p.request_id"
const actionNameCtxKey metadataCtxKey = "p.action"
const loggerCtxKey metadataCtxKey = "p.logger"
const startedCtxKey metadataCtxKey = "p.started"

type RequestCounter struct {
	lastId uint64
}

func (c *RequestCounter) NextId() string {
	return "REQ-" + strconv.FormatUint(atomic.AddUint64(&c.lastId, 1), 10)
}

type InstallMetadataRouter struct {
	next       http.Handler
	actionName string
	counter    *RequestCounter
}

func NewInstallMetadataRouter(actionName string, counter *RequestCounter, next http.Handler) *InstallMetadataRouter {
	return &InstallMetadataRouter{
		next:       next,
		actionName: actionName,
		counter:    counter,
	}
}

func (i *InstallMetadataRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestId := i.counter.NextId()
	logger := logrus.WithFields(logrus.Fields{
		"method":        r.Method,
		"host":          r.Host,
		"resource":      r.URL.Path,
		"contentType":   r.Header.Get("Content-Type"),
		"contentLength": r.ContentLength,
		"queryString":   util.GetLogSafeQueryString(r),
		"requestId":     requestId,
		"remoteAddr":    r.RemoteAddr,
		"userAgent":     r.UserAgent(),
	})

	ctx := r.Context()
	ctx = context.WithValue(ctx, requestIdCtxKey, requestId)
	ctx = context.WithValue(ctx, actionNameCtxKey, i.actionName)
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	ctx = context.WithValue(ctx, startedCtxKey, time.Now())
	r = r.WithContext(ctx)

	if i.next != nil {
		i.next.ServeHTTP(w, r)
	}
}

func GetActionName(r *http.Request) string {
	x, ok := r.Context().Value(actionNameCtxKey).(string)
	if !ok {
		return "<UNKNOWN>"
	}
	return x
}

func GetRequestId(r *http.Request) string {
	x, ok := r.Context().Value(requestIdCtxKey).(string)
	if !ok {
		return ""
	}
	return x
}

func GetLogger(r *http.Request) *logrus.Entry {
	x, ok := r.Context().Value(loggerCtxKey).(*logrus.Entry)
	if !ok {
		return nil
	}
	return x
}

func GetElapsed(r *http.Request) time.Duration {
	x, ok := r.Context().Value(startedCtxKey).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(x)
}

func replaceLogger(r *http.Request, logger *logrus.Entry) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), loggerCtxKey, logger))
}
