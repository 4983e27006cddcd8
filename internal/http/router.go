package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/http/handlers"
	"github.com/Mialde/Micheldekker/internal/http/metrics"
	httpmw "github.com/Mialde/Micheldekker/internal/http/middleware"
	"github.com/Mialde/Micheldekker/internal/ws"
)

type RouterDependencies struct {
	AuthHandler       *handlers.AuthHandler
	VacancyHandler    *handlers.VacancyHandler
	UserHandler       *handlers.UserHandler
	RoleHandler       *handlers.RoleHandler
	SettingsHandler   *handlers.SettingsHandler
	MetricsHandler    *metrics.Handler
	SessionMiddleware *httpmw.SessionMiddleware
	Access            *app.AccessService
	Hub               *ws.Hub
	Metrics           *metrics.Collector
	RequestTimeout    time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// The live websocket endpoint bypasses the timeout and body-limit
	// wrappers; a hijacked connection outlives any request deadline.
	if req.Method == http.MethodGet && req.URL.Path == "/live" {
		r.deps.Hub.ServeWs(w, req)
		return
	}
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodGet && path == "/vacancies":
			r.deps.VacancyHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/vacancies/"):
			r.deps.VacancyHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/settings":
			r.deps.SettingsHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/admin/") {
			protected := r.deps.SessionMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleAdmin(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleAdmin(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	require := func(p role.Permission, h http.HandlerFunc) {
		httpmw.RequirePermission(r.deps.Access, p)(h).ServeHTTP(w, req)
	}

	switch {
	case req.Method == http.MethodGet && path == "/admin/vacancies":
		require(role.PermManageVacancies, r.deps.VacancyHandler.AdminList)
		return
	case req.Method == http.MethodPost && path == "/admin/vacancies":
		require(role.PermManageVacancies, r.deps.VacancyHandler.Create)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/admin/vacancies/"):
		require(role.PermManageVacancies, r.deps.VacancyHandler.AdminGet)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/admin/vacancies/"):
		require(role.PermManageVacancies, r.deps.VacancyHandler.Update)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/vacancies/"):
		require(role.PermManageVacancies, r.deps.VacancyHandler.Delete)
		return
	case req.Method == http.MethodGet && path == "/admin/users":
		require(role.PermManageUsers, r.deps.UserHandler.List)
		return
	case req.Method == http.MethodPost && path == "/admin/users":
		require(role.PermManageUsers, r.deps.UserHandler.Upsert)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/users/"):
		require(role.PermManageUsers, r.deps.UserHandler.Delete)
		return
	case req.Method == http.MethodGet && path == "/admin/roles":
		require(role.PermManageRoles, r.deps.RoleHandler.List)
		return
	case req.Method == http.MethodPost && path == "/admin/roles":
		require(role.PermManageRoles, r.deps.RoleHandler.Upsert)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/admin/roles/") && strings.HasSuffix(path, "/permissions"):
		require(role.PermManageRoles, r.deps.RoleHandler.SetPermissions)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/roles/"):
		require(role.PermManageRoles, r.deps.RoleHandler.Delete)
		return
	case req.Method == http.MethodGet && path == "/admin/settings":
		require(role.PermManageSettings, r.deps.SettingsHandler.Get)
		return
	case req.Method == http.MethodPut && path == "/admin/settings":
		require(role.PermManageSettings, r.deps.SettingsHandler.Save)
		return
	}

	http.NotFound(w, req)
}
