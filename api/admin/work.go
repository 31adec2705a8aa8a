package admin

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_apimeta"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/api/_routers"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/work_controller"
	"github.com/t2bot/portfolio-repo/types"
)

type WorkUpdatedResponse struct {
	Success bool            `json:"success"`
	Data    *types.WorkItem `json:"data"`
}

type WorkDeletedResponse struct {
	Message string `json:"message"`
}

func ListAllWork(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	items, err := work_controller.ListAll(rctx)
	if err != nil {
		return errorResponse(rctx, err, "Failed to fetch work items")
	}
	if items == nil {
		items = make([]*types.WorkItem, 0)
	}
	return &_responses.DoNotCacheResponse{Payload: items}
}

func CreateWork(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	in := &work_controller.WorkInput{}
	if err := _apimeta.ReadJsonBody(r, in); err != nil {
		rctx.Log.Info("Rejecting malformed work item: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	item, err := work_controller.Create(rctx, in)
	if err != nil {
		return errorResponse(rctx, err, "Failed to create work item")
	}
	rctx.Log.WithFields(logrus.Fields{"workId": item.Id}).Info("Work item created")
	return &_responses.CreatedResponse{Payload: item}
}

func UpdateWork(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	id := _routers.GetParam("id", r)
	rctx = rctx.LogWithFields(logrus.Fields{"workId": id})

	in := &work_controller.WorkInput{}
	if err := _apimeta.ReadJsonBody(r, in); err != nil {
		rctx.Log.Info("Rejecting malformed work item: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	item, err := work_controller.Update(rctx, id, in)
	if err != nil {
		return errorResponse(rctx, err, "Failed to update work item")
	}
	return &WorkUpdatedResponse{Success: true, Data: item}
}

func DeleteWork(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	id := _routers.GetParam("id", r)
	rctx = rctx.LogWithFields(logrus.Fields{"workId": id})

	if err := work_controller.Delete(rctx, id); err != nil {
		return errorResponse(rctx, err, "Failed to delete work item")
	}
	rctx.Log.Info("Work item deleted")
	return &WorkDeletedResponse{Message: "Work item deleted successfully"}
}
