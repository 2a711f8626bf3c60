package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"infopage/config"
	"infopage/infras/otel"
	"infopage/infras/otel/mocks"
	"infopage/shared/cache"
	cacheMocks "infopage/shared/cache/mocks"
	"infopage/shared/constant"
	"infopage/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newLimited(t *testing.T, redisCache cache.RedisCache, enable bool) http.Handler {
	t.Helper()

	cfg := config.Default()
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Use(mw.RateLimit())
	router.Get("/slide", okHandler)

	return router
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *cacheMocks.MockRedisCache)
		code      int
		remaining string
	}{
		{
			name: "first request of the window",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			code:      http.StatusOK,
			remaining: "1",
		},
		{
			name: "limit exceeded",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			code: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			setup: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			code: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/slide?slide=1", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")

			newLimited(t, redisCache, true).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	rec := httptest.NewRecorder()
	newLimited(t, redisCache, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slide", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

type namedScope struct {
	otel.Scope

	name string
}

func (s *namedScope) SetName(name string) {
	s.name = name
}

type namingOtel struct {
	otel.Otel

	scopes []*namedScope
}

func (o *namingOtel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &namedScope{Scope: mocks.NewScope(), name: spanName}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

func TestTracingNamesSpanAfterRoute(t *testing.T) {
	tracer := &namingOtel{Otel: mocks.NewOtel()}
	mw := middleware.NewAppMiddleware(tracer, config.Default(), cache.NewRedisCache(nil, mocks.NewOtel()))

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/rooms/{id}", okHandler)

	for _, target := range []string{"/rooms/7", "/rooms/9?full=1"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}

	if assert.Len(t, tracer.scopes, 2) {
		assert.Equal(t, "GET /rooms/{id}", tracer.scopes[0].name)
		assert.Equal(t, "GET /rooms/{id}", tracer.scopes[1].name)
	}
}
