package auth

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_apimeta"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/controllers/auth_controller"
	"github.com/t2bot/portfolio-repo/types"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
}

type RegisterResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    types.PublicUser `json:"user"`
}

func Register(r *http.Request, rctx rcontext.RequestContext) interface{} {
	req := &registerRequest{}
	if err := _apimeta.ReadJsonBody(r, req); err != nil {
		rctx.Log.Info("Rejecting malformed registration: ", err)
		return _responses.BadRequest("Invalid JSON body")
	}

	user, err := auth_controller.Register(rctx, req.Email, req.Password, req.FirstName)
	if err != nil {
		var invalid *common.ValidationError
		if errors.As(err, &invalid) {
			return _responses.InvalidInput(invalid)
		}
		if errors.Is(err, common.ErrRegistrationDisabled) {
			return _responses.Forbidden("Registration is disabled")
		}
		if errors.Is(err, common.ErrAlreadyExists) {
			return _responses.BadRequest("Email already exists")
		}
		rctx.Log.Error("Unexpected error registering user: ", err)
		sentry.CaptureException(err)
		return _responses.InternalServerError("Registration failed")
	}

	rctx.Log.WithFields(logrus.Fields{"newUserId": user.Id}).Info("User registered")
	return &_responses.CreatedResponse{
		Payload: &RegisterResponse{
			Success: true,
			Message: "User registered successfully",
			User:    user.Public(),
		},
	}
}
