package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_responses"
	"github.com/t2bot/portfolio-repo/api/_routers"
	"github.com/t2bot/portfolio-repo/util"
)

func buildPrimaryRouter() *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(false)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedFn)
	router.NotFoundHandler = http.HandlerFunc(notFoundFn)
	router.Use(recoverPanics)
	return router
}

// withPreflight answers CORS preflight requests for any path before routing.
func withPreflight(next http.Handler) http.Handler {
	preflight := _routers.NewInstallHeadersRouter(http.HandlerFunc(finishCorsFn))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			preflight.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodNotAllowedFn(w http.ResponseWriter, r *http.Request) {
	writeJsonError(w, http.StatusMethodNotAllowed, _responses.MethodNotAllowed())
}

func notFoundFn(w http.ResponseWriter, r *http.Request) {
	writeJsonError(w, http.StatusNotFound, _responses.NotFoundError())
}

func finishCorsFn(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if i := recover(); i != nil {
				panicFn(w, r, i)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func panicFn(w http.ResponseWriter, r *http.Request, i interface{}) {
	logrus.Errorf("Panic received on %s %s: %s", r.Method, util.GetLogSafeUrl(r), i)

	//goland:noinspection GoTypeAssertionOnErrors
	if e, ok := i.(error); ok {
		sentry.CaptureException(e)
	} else {
		sentry.CaptureMessage(fmt.Sprintf("Unknown panic received: %T %s %+v", i, i, i))
	}

	writeJsonError(w, http.StatusInternalServerError, _responses.InternalServerError("unexpected error"))
}

func writeJsonError(w http.ResponseWriter, statusCode int, res *_responses.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	b, err := json.Marshal(res)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("error preparing %s: %v", res.Code, err))
		logrus.Errorf("error preparing %s: %v", res.Code, err)
		return
	}
	_, _ = w.Write(b)
}
