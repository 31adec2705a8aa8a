package admin

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_apimeta"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/upload_controller"
)

// Room for the multipart framing around the file itself.
const multipartSlackBytes = 1024 * 1024

const multipartMemoryBytes = 8 * 1024 * 1024

type UploadedResponse struct {
	Success  bool   `json:"success"`
	Url      string `json:"url"`
	PublicId string `json:"publicId"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

func Upload(r *http.Request, rctx rcontext.RequestContext, user _apimeta.UserInfo) interface{} {
	maxBytes := maxRequestBytes()
	if r.ContentLength > maxBytes {
		return _responses.RequestTooLarge()
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return _responses.RequestTooLarge()
		}
		rctx.Log.Info("Rejecting unparsable upload: ", err)
		return _responses.BadRequest("No file provided")
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		return _responses.BadRequest("No file provided")
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	rctx = rctx.LogWithFields(logrus.Fields{"filename": filename})

	result, err := upload_controller.Upload(rctx, file, header.Size, header.Header.Get("Content-Type"), filename)
	if err != nil {
		var policyErr *upload_controller.PolicyError
		if errors.As(err, &policyErr) {
			return _responses.BadRequest(policyErr.Message)
		}
		rctx.Log.Error("Unexpected error uploading file: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Failed to upload file")
	}

	return &UploadedResponse{
		Success:  true,
		Url:      result.Url,
		PublicId: result.PublicId,
		Width:    result.Width,
		Height:   result.Height,
	}
}

func maxRequestBytes() int64 {
	conf := config.Get().Uploads
	largest := conf.MaxDocumentBytes
	if conf.MaxImageBytes > largest {
		largest = conf.MaxImageBytes
	}
	return largest + multipartSlackBytes
}
