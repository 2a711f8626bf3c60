package slide

import (
	"net/http"
	"strings"

	"infopage/infras/otel"
	"infopage/internal/domains/slide/service"
	"infopage/shared"
	"infopage/shared/constant"
	"infopage/shared/failure"
	"infopage/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Slide
	otel    otel.Otel
}

func New(service service.Slide, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slide", handler.GetSlide)
}

// GetSlide renders the slide picked by the slide counter query parameter as
// an HTML fragment. Without a counter the default master is rendered.
func (handler *Handler) GetSlide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlide")
	defer scope.End()

	counter, err := parseCounter(r.URL.Query().Get(constant.RequestParamSlide))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Str("slide", r.URL.Query().Get(constant.RequestParamSlide)).Msg("invalid slide parameter")

		response.WithError(w, err)

		return
	}

	html, err := handler.service.Render(ctx, counter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render slide")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, html)
}

func parseCounter(value string) (*int64, error) {
	if strings.TrimSpace(value) == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	counter, err := shared.ConvertStringToInt64(value)
	if err != nil {
		return nil, failure.InvalidSlideParam
	}

	return &counter, nil
}
