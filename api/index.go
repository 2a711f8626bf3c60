package handler

import (
	"context"
	"net/http"
	"sync"

	"infopage/config"
	"infopage/di"
	"infopage/shared/logger"
	"infopage/shared/timezone"
	"infopage/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

// Handler serves the slide endpoints as a serverless function. The first
// request connects; later ones reuse the connection of the warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg, err := config.Load("")
		if err != nil {
			initErr = err

			return
		}

		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		app := di.InitializeApp(cfg)
		if err := app.Conn.Connect(context.Background()); err != nil {
			initErr = err

			return
		}

		handler = app.Server.Handler()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to start infopage")
		response.WithError(w, initErr)

		return
	}

	handler.ServeHTTP(w, r)
}
