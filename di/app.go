package di

import (
	"infopage/infras/otel"
	"infopage/infras/postgres"
	eventService "infopage/internal/domains/event/service"
	roomService "infopage/internal/domains/room/service"
	slideService "infopage/internal/domains/slide/service"
	"infopage/transport/http"
)

// App holds everything a command needs. The connection starts closed; the
// command connects it once the flags are applied.
type App struct {
	Conn   *postgres.Connection
	Otel   otel.Otel
	Rooms  roomService.Room
	Slides slideService.Slide
	Events eventService.Event
	Server *http.HTTP
}
