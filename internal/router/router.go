package router

import (
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/TimKirathe/wonderland-api/internal/auth"
	"github.com/TimKirathe/wonderland-api/internal/handler"
	mw "github.com/TimKirathe/wonderland-api/internal/middleware"
	"github.com/TimKirathe/wonderland-api/internal/ratelimit"
)

// New builds the route table. Both intake endpoints carry their own limiter
// instance with its own policy.
func New(
	jwtSecret string,
	contactLimiter *ratelimit.Limiter,
	inquiryLimiter *ratelimit.Limiter,
	contactH *handler.ContactHandler,
	inquiryH *handler.InquiryHandler,
	reviewH *handler.ReviewHandler,
	photosH *handler.PhotosHandler,
	healthH *handler.HealthHandler,
	monitoringH *handler.MonitoringHandler,
	adminH *handler.AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(mw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Lead intake
		r.With(ratelimit.Middleware(contactLimiter)).Post("/contact", contactH.Create)
		r.With(ratelimit.Middleware(inquiryLimiter)).Post("/inquiries", inquiryH.Create)

		// Marketing content
		r.Get("/reviews", reviewH.List)
		r.Get("/marketing-photos", photosH.List)

		// Telemetry
		r.Get("/health", healthH.Health)
		r.Get("/monitoring/status", monitoringH.Status)
		r.Post("/monitoring/error", monitoringH.Error)
		r.Post("/monitoring/performance", monitoringH.Performance)

		// Staff console (read-only)
		r.Post("/admin/login", adminH.Login)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Get("/admin/submissions", adminH.ListSubmissions)
			r.Get("/admin/inquiries", adminH.ListInquiries)
		})
	})

	return r
}
