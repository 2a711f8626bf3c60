package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"infopage/config"
	"infopage/infras/otel"
	"infopage/internal/domains/room/model"
	"infopage/internal/domains/room/model/dto"
	"infopage/internal/domains/room/repository"
	"infopage/shared/cache"
	"infopage/shared/constant"
	gDto "infopage/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom = constant.CachePrefixRoom + ":list"
)

type Room interface {
	List(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns every room ordered by id.
func (s *serviceImpl) List(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetRoom, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheGetRoom).Msg("cache hit for rooms")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	if err := s.cache.Save(ctx, cacheGetRoom, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}
