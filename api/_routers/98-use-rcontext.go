package _routers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alioygur/is"
	"github.com/pkg/errors"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
)

type GeneratorFn = func(r *http.Request, ctx rcontext.RequestContext) interface{}

type RContextRouter struct {
	generatorFn GeneratorFn
	next        http.Handler
}

func NewRContextRouter(generatorFn GeneratorFn, next http.Handler) *RContextRouter {
	return &RContextRouter{generatorFn: generatorFn, next: next}
}

func (c *RContextRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := GetLogger(r)
	rctx := rcontext.FromRequest(r, log)
	log = rctx.Log

	var res interface{}
	res = c.generatorFn(r, rctx)
	if res == nil {
		res = &_responses.EmptyResponse{}
	}

	headers := w.Header()

	if wrappedRes, isNoCache := res.(*_responses.DoNotCacheResponse); isNoCache {
		headers.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		headers.Set("Pragma", "no-cache")
		headers.Set("Expires", "0")
		res = wrappedRes.Payload
	}

	proposedStatusCode := http.StatusOK
	if createdRes, isCreated := res.(*_responses.CreatedResponse); isCreated {
		proposedStatusCode = http.StatusCreated
		res = createdRes.Payload
	}

	if redirectRes, isRedirect := res.(*_responses.RedirectResponse); isRedirect {
		log.Info("Replying with redirect")
		headers.Set("Location", redirectRes.ToUrl)
		r = writeStatusCode(w, r, http.StatusFound)
		if c.next != nil {
			c.next.ServeHTTP(w, r)
		}
		return
	}

	var stream io.ReadCloser
	expectedBytes := int64(0)
	var contentType string
	if downloadRes, isDownload := res.(*_responses.DownloadResponse); isDownload {
		log.Infof("Replying with download: %s (%d bytes)", downloadRes.ContentType, downloadRes.SizeBytes)
		contentType = downloadRes.ContentType
		expectedBytes = downloadRes.SizeBytes
		stream = downloadRes.Data

		if headers.Get("Cache-Control") == "" {
			headers.Set("Cache-Control", "public, max-age=31536000, immutable")
		}

		disposition := downloadRes.TargetDisposition
		if disposition == "" {
			disposition = "inline"
		}
		if downloadRes.Filename != "" {
			if is.ASCII(downloadRes.Filename) {
				disposition = disposition + "; filename=" + url.QueryEscape(downloadRes.Filename)
			} else {
				disposition = disposition + "; filename*=utf-8''" + url.QueryEscape(downloadRes.Filename)
			}
		}
		headers.Set("Content-Disposition", disposition)
	} else {
		log.Infof("Replying with result: %T %+v", res, res)
	}

	if errRes, isError := res.(_responses.ErrorResponse); isError {
		res = &errRes
	}
	if errRes, isError := res.(*_responses.ErrorResponse); isError {
		proposedStatusCode = statusForErrorCode(errRes.InternalCode)
	}

	if stream == nil {
		contentType = "application/json"
		b, err := json.Marshal(res)
		if err != nil {
			panic(err) // blow up this request
		}
		stream = io.NopCloser(bytes.NewReader(b))
		expectedBytes = int64(len(b))
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if mediaType, params, err := mime.ParseMediaType(contentType); err != nil {
		log.Warn("Failed to parse content type header on reply: ", err)
	} else {
		contentType = mime.FormatMediaType(mediaType, params)
	}
	headers.Set("Content-Type", contentType)

	if expectedBytes > 0 {
		headers.Set("Content-Length", strconv.FormatInt(expectedBytes, 10))
	}

	r = writeStatusCode(w, r, proposedStatusCode)

	defer stream.Close()
	if r.Method != http.MethodHead {
		written, err := io.Copy(w, stream)
		if err != nil {
			panic(err) // blow up this request
		}
		if expectedBytes > 0 && written != expectedBytes {
			panic(errors.Errorf("mismatch transfer size: %d expected, %d sent", expectedBytes, written))
		}
	}

	if c.next != nil {
		c.next.ServeHTTP(w, r)
	}
}

func statusForErrorCode(code string) int {
	switch code {
	case common.ErrCodeUnknownToken, common.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case common.ErrCodeNotFound:
		return http.StatusNotFound
	case common.ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case common.ErrCodeBadRequest, common.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case common.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case common.ErrCodeForbidden:
		return http.StatusForbidden
	case common.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default: // Treat as unknown (a generic server error)
		return http.StatusInternalServerError
	}
}

func GetStatusCode(r *http.Request) int {
	x, ok := r.Context().Value(common.ContextStatusCode).(int)
	if !ok {
		return http.StatusOK
	}
	return x
}

func writeStatusCode(w http.ResponseWriter, r *http.Request, statusCode int) *http.Request {
	w.WriteHeader(statusCode)
	return r.WithContext(context.WithValue(r.Context(), common.ContextStatusCode, statusCode))
}
