package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	TokenService        *service.TokenService
	AccountService      *service.AccountService
	FacultyService      *service.FacultyService
	NotificationService *service.NotificationService
	NoticeService       *service.NoticeService
	UIDService          *service.UIDService
	BootstrapService    *service.BootstrapService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerFaculty()
	r.registerNotifications()
	r.registerNotices()
	r.registerAdmin()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Campus Core API
//	@version		0.1.0
//	@description	Authentication, authorization and notification fan-out for the campus community platform. Identity tokens are HS256-signed JWTs carried as bearer tokens.
//
//	@contact.name				CampusConnect Team
//	@contact.url				https://github.com/campusconnect/campuscore
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT identity token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	loginHandler := &LoginHandler{AccountService: r.AccountService}
	refreshHandler := &RefreshHandler{TokenService: r.TokenService, AccountService: r.AccountService}
	meHandler := &MeHandler{}
	profileHandler := &ProfileHandler{AccountService: r.AccountService}

	// POST /auth/register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/refresh-token - moderate; carries its own token validation,
	// no authn middleware since expired tokens must be let through
	r.Mux.Handle("POST /auth/refresh-token",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /auth/me - authenticated, lenient by user
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(meHandler,
			AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /auth/users/{handle} - public profile, lenient by IP
	r.Mux.Handle("GET /auth/users/{handle}",
		httpx.Chain(profileHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerFaculty() {
	h := &FacultyHandler{FacultyService: r.FacultyService}

	// POST /auth/faculty-request - authenticated, moderate by user
	r.Mux.Handle("POST /auth/faculty-request",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Admin review queue - moderate by user
	adminChain := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			AuthnMiddleware(r.TokenService),
			RequireAction(service.ActionManageFacultyRequest),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /auth/faculty-requests", adminChain(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /auth/faculty-requests/{id}/approve", adminChain(http.HandlerFunc(h.HandleApprove)))
	r.Mux.Handle("POST /auth/faculty-requests/{id}/reject", adminChain(http.HandlerFunc(h.HandleReject)))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}

	secured := func(handler http.Handler) http.Handler {
		return httpx.Chain(handler,
			AuthnMiddleware(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /notifications", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /notifications/unread/count", secured(http.HandlerFunc(h.HandleUnreadCount)))
	r.Mux.Handle("PUT /notifications/{id}/read", secured(http.HandlerFunc(h.HandleMarkRead)))
	r.Mux.Handle("PUT /notifications/read-all", secured(http.HandlerFunc(h.HandleMarkAllRead)))
}

func (r *Router) registerNotices() {
	h := &NoticesHandler{NoticeService: r.NoticeService}

	// POST /notices - faculty and admins only, moderate by user
	r.Mux.Handle("POST /notices",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			AuthnMiddleware(r.TokenService),
			RequireAction(service.ActionCreateNotice),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /notices - public feed, lenient by IP
	r.Mux.Handle("GET /notices",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &UIDHandler{UIDService: r.UIDService}

	adminChain := func(handler http.Handler) http.Handler {
		return httpx.Chain(handler,
			AuthnMiddleware(r.TokenService),
			RequireAction(service.ActionManageUIDs),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /admin/uids", adminChain(http.HandlerFunc(h.HandleAdd)))
	r.Mux.Handle("DELETE /admin/uids/{uid}", adminChain(http.HandlerFunc(h.HandleDeactivate)))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
