package router

import (
	"portal/internal/handlers/auth"
	"portal/internal/handlers/booking"
	"portal/internal/handlers/file"
	"portal/internal/handlers/message"
	"portal/internal/handlers/sync"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Message message.Handler
	File    file.Handler
	Sync    sync.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.File.Router(routerGroup)
		r.DomainHandlers.Sync.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
