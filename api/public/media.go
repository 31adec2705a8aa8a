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
	"github.com/t2bot/portfolio-repo/controllers/upload_controller"
	"github.com/t2bot/portfolio-repo/datastores"
)

func DownloadMedia(r *http.Request, rctx rcontext.RequestContext) interface{} {
	folder := _routers.GetParam("folder", r)
	name := _routers.GetParam("name", r)
	rctx = rctx.LogWithFields(logrus.Fields{
		"folder": folder,
		"name":   name,
	})

	media, err := upload_controller.OpenMedia(rctx, folder, name)
	if err != nil {
		var redirect datastores.RedirectError
		if errors.As(err, &redirect) {
			return _responses.Redirect(redirect.RedirectUrl)
		}
		if errors.Is(err, common.ErrNotFound) {
			return _responses.NotFoundError()
		}
		rctx.Log.Error("Unexpected error opening media: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Unexpected Error")
	}

	return &_responses.DownloadResponse{
		ContentType:       media.ContentType,
		Filename:          media.Filename,
		SizeBytes:         media.SizeBytes,
		Data:              media.Data,
		TargetDisposition: "inline",
	}
}
