package auth

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/t2bot/portfolio-repo/api/_apimeta"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/auth_controller"
	"github.com/t2bot/portfolio-repo/types"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Token     string           `json:"token"`
	ExpiresAt int64            `json:"expiresAt"`
	User      types.PublicUser `json:"user"`
}

func Login(r *http.Request, rctx rcontext.RequestContext) interface{} {
	req := &loginRequest{}
	if err := _apimeta.ReadJsonBody(r, req); err != nil {
		rctx.Log.Info("Rejecting malformed login: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	result, err := auth_controller.Login(rctx, req.Email, req.Password)
	if err != nil {
		var invalid *common.ValidationError
		if errors.As(err, &invalid) {
			return _responses.InvalidInput(invalid)
		}
		if errors.Is(err, common.ErrInvalidCredentials) {
			return _responses.InvalidCredentials()
		}
		rctx.Log.Error("Unexpected error logging in: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Login failed")
	}

	return &_responses.DoNotCacheResponse{
		Payload: &LoginResponse{
			Success:   true,
			Message:   "Login successful",
			Token:     result.Token,
			ExpiresAt: result.ExpiresAt.UnixMilli(),
			User:      result.User.Public(),
		},
	}
}
