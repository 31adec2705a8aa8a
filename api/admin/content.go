package admin

import (
	"net/http"

	"github.com/t2bot/portfolio-repo/api/_apimeta"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/content_controller"
)

type ContentUpdatedResponse struct {
	Success bool        `json:"success"`
	Content interface{} `json:"content"`
}

type aboutMeRequest struct {
	Content string `json:"content"`
}

func UpdateSiteContent(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	req := &content_controller.UpdateRequest{}
	if err := _apimeta.ReadJsonBody(r, req); err != nil {
		rctx.Log.Info("Rejecting malformed site content: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	content, err := content_controller.UpdateSiteContent(rctx, req)
	if err != nil {
		return errorResponse(rctx, err, "Failed to update site content")
	}
	return &ContentUpdatedResponse{Success: true, Content: content}
}

func UpdateAboutMe(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	req := &aboutMeRequest{}
	if err := _apimeta.ReadJsonBody(r, req); err != nil {
		rctx.Log.Info("Rejecting malformed about me content: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	text, err := content_controller.UpdateAboutMe(rctx, req.Content)
	if err != nil {
		return errorResponse(rctx, err, "Failed to update about me content")
	}
	return &ContentUpdatedResponse{Success: true, Content: text}
}
