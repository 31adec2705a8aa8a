package public

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/content_controller"
)

type AboutMeResponse struct {
	Content string `json:"content"`
}

func GetSiteContent(r *http.Request, rctx rcontext.RequestContext) interface{} {
	content, err := content_controller.GetSiteContent(rctx)
	if err != nil {
		rctx.Log.Error("Unexpected error getting site content: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to fetch site content")
	}
	return &_responses.DoNotCacheResponse{Payload: content}
}

func GetAboutMe(r *http.Request, rctx rcontext.RequestContext) interface{} {
	text, err := content_controller.GetAboutMe(rctx)
	if err != nil {
		rctx.Log.Error("Unexpected error getting about me: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to fetch about me content")
	}
	return &_responses.DoNotCacheResponse{Payload: &AboutMeResponse{Content: text}}
}
