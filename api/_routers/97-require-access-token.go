package _routers

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
	"github.com/t2bot/portfolio-repo/util"
)

type GeneratorWithUserFn = func(r *http.Request, ctx rcontext.RequestContext, user _apimeta.UserInfo) interface{}

func RequireAccessToken(generator GeneratorWithUserFn) GeneratorFn {
	return func(r *http.Request, ctx rcontext.RequestContext) interface{} {
		accessToken := util.GetAccessTokenFromRequest(r)
		if accessToken == "" {
			return _responses.MissingToken()
		}

		session, err := auth_controller.ValidateToken(accessToken)
		if err != nil {
			if !errors.Is(err, common.ErrInvalidToken) {
				sentry.CaptureException(err)
				ctx.Log.Error("Error verifying token: ", err)
				return _responses.InternalServerError("unexpected error validating access token")
			}
			ctx.Log.Debug("Rejecting invalid access token")
			return _responses.AuthFailed()
		}

		ctx = ctx.LogWithFields(logrus.Fields{"authUserId": session.UserId})
		return generator(r, ctx, _apimeta.UserInfo{
			UserId:      session.UserId,
			Email:       session.Email,
			FirstName:   session.FirstName,
			AccessToken: accessToken,
		})
	}
}
