package router

import (
	"github.com/go-chi/chi/v5"

	"turnero/internal/handlers/auth"
	"turnero/internal/handlers/booking"
	"turnero/internal/handlers/health"
	"turnero/internal/handlers/schedule"
	"turnero/internal/handlers/user"
)

type DomainHandlers struct {
	Health   health.Handler
	Auth     auth.Handler
	User     user.Handler
	Schedule schedule.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
