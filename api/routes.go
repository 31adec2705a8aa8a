package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/api/_routers"
	"github.com/t2bot/portfolio-repo/api/admin"
	"github.com/t2bot/portfolio-repo/api/auth"
	"github.com/t2bot/portfolio-repo/api/custom"
	"github.com/t2bot/portfolio-repo/api/public"
	"github.com/t2bot/portfolio-repo/datastores"
)

const PrefixApi = "/api"

func buildRoutes() http.Handler {
	counter := &_routers.RequestCounter{}
	router := buildPrimaryRouter()

	// Public site
	listWorkRoute := makeRoute(public.ListWork, "list_work", counter)
	register([]string{"GET"}, PrefixApi, "/work", router, listWorkRoute)
	register([]string{"GET"}, PrefixApi, "/work/public", router, listWorkRoute)
	register([]string{"GET"}, PrefixApi, "/work/{id}", router, makeRoute(public.GetWork, "get_work", counter))
	register([]string{"GET"}, PrefixApi, "/site-content", router, makeRoute(public.GetSiteContent, "get_site_content", counter))
	register([]string{"GET"}, PrefixApi, "/about-me", router, makeRoute(public.GetAboutMe, "get_about_me", counter))
	register([]string{"GET"}, PrefixApi, "/embeds/preview", router, makeRoute(public.PreviewEmbed, "preview_embed", counter))
	register([]string{"GET", "HEAD"}, datastores.MediaPathPrefix, "/{folder}/{name}", router, makeRoute(public.DownloadMedia, "download_media", counter))

	// Sessions
	register([]string{"POST"}, PrefixApi, "/auth/login", router, makeRoute(_routers.LimitAuthAttempts(auth.Login), "login", counter))
	register([]string{"POST"}, PrefixApi, "/auth/register", router, makeRoute(_routers.LimitAuthAttempts(auth.Register), "register", counter))

	// Dashboard
	register([]string{"GET"}, PrefixApi, "/admin/work", router, makeRoute(_routers.RequireAccessToken(admin.ListAllWork), "list_all_work", counter))
	register([]string{"POST"}, PrefixApi, "/work", router, makeRoute(_routers.RequireAccessToken(admin.CreateWork), "create_work", counter))
	register([]string{"PATCH", "PUT"}, PrefixApi, "/work/{id}", router, makeRoute(_routers.RequireAccessToken(admin.UpdateWork), "update_work", counter))
	register([]string{"DELETE"}, PrefixApi, "/work/{id}", router, makeRoute(_routers.RequireAccessToken(admin.DeleteWork), "delete_work", counter))
	register([]string{"PUT"}, PrefixApi, "/site-content", router, makeRoute(_routers.RequireAccessToken(admin.UpdateSiteContent), "update_site_content", counter))
	register([]string{"PUT"}, PrefixApi, "/about-me", router, makeRoute(_routers.RequireAccessToken(admin.UpdateAboutMe), "update_about_me", counter))
	register([]string{"POST"}, PrefixApi, "/upload", router, makeRoute(_routers.RequireAccessToken(admin.Upload), "upload", counter))

	// Custom and top-level features
	register([]string{"GET"}, PrefixApi, "/version", router, makeRoute(custom.GetVersion, "get_version", counter))
	register([]string{"GET", "HEAD"}, "", "/healthz", router, makeRoute(custom.GetHealthz, "healthz", counter))

	return withPreflight(router)
}

func makeRoute(generator _routers.GeneratorFn, name string, counter *_routers.RequestCounter) http.Handler {
	return _routers.NewInstallMetadataRouter(name, counter,
		_routers.NewInstallHeadersRouter(
			_routers.NewRemoteAddrRouter(
				_routers.NewMetricsRequestRouter(
					_routers.NewRContextRouter(generator, _routers.NewMetricsResponseRouter(nil)),
				),
			),
		))
}

func register(methods []string, prefix string, postfix string, router *mux.Router, handler http.Handler) {
	path := prefix + postfix
	router.Handle(path, handler).Methods(methods...)
	logrus.Debug("Registering route: ", methods, path)
}
