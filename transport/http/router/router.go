package router

import (
	"infopage/internal/handlers/room"
	"infopage/internal/handlers/slide"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room  room.Handler
	Slide slide.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Slide.Router(router)
	r.DomainHandlers.Room.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
