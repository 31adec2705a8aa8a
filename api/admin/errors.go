package admin

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
)

// errorResponse maps controller errors onto replies. Anything unrecognized is
// reported and replaced with fallbackMessage.
func errorResponse(rctx rcontext.RequestContext, err error, fallbackMessage string) *_responses.ErrorResponse {
	var invalid *common.ValidationError
	if errors.As(err, &invalid) {
		return _responses.InvalidInput(invalid)
	}
	if errors.Is(err, common.ErrNotFound) {
		return _responses.NotFound("Work item not found")
	}
	rctx.Log.Error("Unexpected error: ", err)
	sentry.CaptureException(err)
	return _responses.InternalServerError(fallbackMessage)
}
