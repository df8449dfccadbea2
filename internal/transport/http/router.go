package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"neoauth/internal/dto"
	obsmw "neoauth/internal/observability/middleware"
	"neoauth/internal/service"
)

// Handler holds the service layer behind the HTTP surface.
type Handler struct {
	auth      service.AuthService
	twoFactor service.TwoFactorService
	admin     service.AdminService
	oauth     service.OAuthService
}

func NewHandler(auth service.AuthService, twoFactor service.TwoFactorService, admin service.AdminService, oauth service.OAuthService) *Handler {
	return &Handler{auth: auth, twoFactor: twoFactor, admin: admin, oauth: oauth}
}

type RouterConfig struct {
	CORSOrigins []string
}

func NewRouter(h *Handler, gate *AuthGate, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Auth-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.WithMetrics)
	r.Use(obsmw.WithRequestLog)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/reset-password-request", h.requestPasswordReset)
			r.Post("/reset-password", h.resetPassword)

			r.Group(func(r chi.Router) {
				r.Use(gate.Authenticate)
				r.Get("/profile", h.profile)
				r.Put("/profile", h.updateProfile)
			})
		})

		r.Route("/2fa", func(r chi.Router) {
			r.Use(gate.Authenticate)
			r.Post("/enable", h.twoFactorEnable)
			r.Post("/generate-code", h.twoFactorGenerateCode)
			r.Post("/confirm", h.twoFactorConfirm)
			r.Post("/verify", h.twoFactorVerify)
			r.Post("/disable", h.twoFactorDisable)
			r.Get("/status", h.twoFactorStatus)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.Authenticate, gate.RequireAdmin)
			r.Get("/users", h.adminListUsers)
			r.Put("/user-role", h.adminUpdateRole)
			r.Put("/user-status", h.adminUpdateStatus)
			r.Get("/activity-log", h.adminActivityLog)
			r.Get("/stats", h.adminStats)
		})

		r.Route("/oauth", func(r chi.Router) {
			r.Get("/init", h.oauthInit)
			r.Post("/callback", h.oauthCallback)
		})
	})

	return r
}
