package rcontext

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerCtxKey contextKey = "p.logger"
const requestCtxKey contextKey = "p.request"

func Initial() RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"nocontext": true}),
		Request: nil,
	}.populate()
}

// Background is like Initial but tags the log entries with the given stage
// instead of flagging them as contextless.
func Background(stage string) RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"stage": stage}),
		Request: nil,
	}.populate()
}

func FromRequest(r *http.Request, log *logrus.Entry) RequestContext {
	if log == nil {
		log = logrus.WithFields(logrus.Fields{"nocontext": true})
	}
	return RequestContext{
		Context: r.Context(),
		Log:     log,
		Request: r,
	}.populate()
}

type RequestContext struct {
	context.Context

	// These are also stored on the context object itself
	Log     *logrus.Entry // p.logger
	Request *http.Request // p.request
}

func (c RequestContext) populate() RequestContext {
	c.Context = context.WithValue(c.Context, loggerCtxKey, c.Log)
	c.Context = context.WithValue(c.Context, requestCtxKey, c.Request)
	return c
}

func (c RequestContext) ReplaceLogger(log *logrus.Entry) RequestContext {
	ctx := context.WithValue(c.Context, loggerCtxKey, log)
	return RequestContext{
		Context: ctx,
		Log:     log,
		Request: c.Request,
	}
}

func (c RequestContext) LogWithFields(fields logrus.Fields) RequestContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
