package public

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/api/_routers"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/work_controller"
	"github.com/t2bot/portfolio-repo/types"
)

func ListWork(r *http.Request, rctx rcontext.RequestContext) interface{} {
	items, err := work_controller.ListPublic(rctx)
	if err != nil {
		rctx.Log.Error("Unexpected error listing work items: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to fetch work items")
	}
	if items == nil {
		items = make([]*types.WorkItem, 0)
	}
	return &_responses.DoNotCacheResponse{Payload: items}
}

func GetWork(r *http.Request, rctx rcontext.RequestContext) interface{} {
	id := _routers.GetParam("id", r)
	rctx = rctx.LogWithFields(logrus.Fields{"workId": id})

	item, err := work_controller.Get(rctx, id)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		rctx.Log.Error("Unexpected error getting work item: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to fetch work item")
	}
	if item == nil || !item.Visible {
		return _responses.NotFound("Work item not found")
	}
	return &_responses.DoNotCacheResponse{Payload: item}
}
