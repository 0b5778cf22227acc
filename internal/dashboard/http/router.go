package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/httpx"
	"github.com/peakform/coachdesk/pkg/slogx"

	_ "github.com/peakform/coachdesk/api/dashboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	jwtSecret    []byte
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	hub   *events.Hub

	RosterService       *service.RosterService
	TeamService         *service.TeamService
	InvitationService   *service.InvitationService
	IntelligenceService *service.IntelligenceService
	StatsService        *service.StatsService
	PreferencesService  *service.PreferencesService
	Housekeeping        *service.HousekeepingService
}

func NewRouter(
	jwtSecret []byte,
	issuer, buildVersion string,
	st store.Store,
	hub *events.Hub,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		jwtSecret:    jwtSecret,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		hub:          hub,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerTeam()
	r.registerInvitations()
	r.registerIntelligence()
	r.registerStats()
	r.registerPreferences()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CoachDesk Dashboard API
//	@version		0.1.0
//	@description	Role-scoped coaching dashboard backend: client rosters, team figures,
//	@description	coach invitations and the intelligence feed. Authentication is a Bearer
//	@description	token minted by the hosted identity provider; the subject claim is the
//	@description	coach id and the role claim drives route authorisation.
//
//	@contact.name				PeakForm Engineering
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the bearer token; roles additionally restricts which roles
// may hit the route.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.jwtSecret, r.issuer)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{RosterService: r.RosterService}

	// Roster reads are the hottest endpoints; dashboards poll them.
	r.Mux.Handle("GET /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/clients/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			r.authn(),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)

	// Per-coach roster views; the service enforces that a coach can only
	// name themselves here.
	r.Mux.Handle("GET /v1/coaches/{id}/clients",
		httpx.Chain(http.HandlerFunc(h.HandleCoachClients),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/coaches/{id}/adherence",
		httpx.Chain(http.HandlerFunc(h.HandleCoachAdherence),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)

	c := &CheckInsHandler{RosterService: r.RosterService}
	r.Mux.Handle("GET /v1/clients/{id}/checkins",
		httpx.Chain(http.HandlerFunc(c.HandleList),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/clients/{id}/checkins",
		httpx.Chain(http.HandlerFunc(c.HandleCreate),
			r.authn(),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/clients/{id}/checkins/{checkin}/review",
		httpx.Chain(http.HandlerFunc(c.HandleReview),
			r.authn(),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTeam() {
	h := &TeamHandler{TeamService: r.TeamService}

	// Team views are for admins and head coaches only.
	teamRead := []httpx.Middleware{
		r.authn(),
		httpx.RequireRole(domain.RoleAdmin, domain.RoleHeadCoach),
		httpx.RateLimitByCoach(httpx.LenientLimit),
	}

	r.Mux.Handle("GET /v1/coaches",
		httpx.Chain(http.HandlerFunc(h.HandleList), teamRead...))
	r.Mux.Handle("GET /v1/coaches/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), teamRead...))
	r.Mux.Handle("GET /v1/team/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats), teamRead...))

	// Approval is an admin-only mutation.
	adminWrite := []httpx.Middleware{
		r.authn(),
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByCoach(httpx.ModerateLimit),
	}

	r.Mux.Handle("POST /v1/coaches/{id}/approve",
		httpx.Chain(http.HandlerFunc(h.HandleApprove), adminWrite...))
	r.Mux.Handle("POST /v1/coaches/{id}/reject",
		httpx.Chain(http.HandlerFunc(h.HandleReject), adminWrite...))
}

func (r *Router) registerInvitations() {
	mint := &InviteMintHandler{InvitationService: r.InvitationService}
	redeem := &InviteRedeemHandler{InvitationService: r.InvitationService}
	revoke := &InviteRevokeHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(mint,
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)

	// Redemption is the one unauthenticated mutation; strict IP limit.
	r.Mux.Handle("POST /v1/invitations/redeem",
		httpx.Chain(redeem,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations/{id}/revoke",
		httpx.Chain(revoke,
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerIntelligence() {
	h := &IntelligenceHandler{IntelligenceService: r.IntelligenceService}

	read := []httpx.Middleware{
		r.authn(),
		httpx.RequireRole(domain.RoleAdmin, domain.RoleHeadCoach),
		httpx.RateLimitByCoach(httpx.LenientLimit),
	}

	r.Mux.Handle("GET /v1/intelligence",
		httpx.Chain(http.HandlerFunc(h.HandleFeed), read...))
	r.Mux.Handle("GET /v1/intelligence/churn",
		httpx.Chain(http.HandlerFunc(h.HandleChurn), read...))

	r.Mux.Handle("POST /v1/intelligence/{id}/resolve",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin, domain.RoleHeadCoach),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/revenue/import",
		httpx.Chain(http.HandlerFunc(h.HandleRevenueImport),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPreferences() {
	h := &PreferencesHandler{PreferencesService: r.PreferencesService}

	r.Mux.Handle("GET /v1/preferences",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/preferences",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			r.authn(),
			httpx.RateLimitByCoach(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{Hub: r.hub}

	r.Mux.Handle("GET /v1/events",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByCoach(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
