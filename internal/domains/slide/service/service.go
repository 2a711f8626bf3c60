package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"infopage/config"
	"infopage/infras/otel"
	"infopage/infras/postgres"
	settingService "infopage/internal/domains/setting/service"
	"infopage/internal/domains/slide/master"
	"infopage/internal/domains/slide/model/dto"
	"infopage/internal/domains/slide/repository"
	"infopage/shared"
	"infopage/shared/cache"
	"infopage/shared/constant"
	"infopage/shared/failure"
	"infopage/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheRenderSlide = constant.CachePrefixSlide + ":render"
	noSlide          = "none"
)

type Slide interface {
	SetOrder(ctx context.Context, specs []dto.SlideSpec) error
	Select(ctx context.Context, counter *int64) (dto.SlideRef, error)
	Render(ctx context.Context, counter *int64) (string, error)
}

type serviceImpl struct {
	repo     repository.Slide
	settings settingService.Setting
	renderer *master.Renderer
	tx       postgres.Transactor
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Slide,
	settings settingService.Setting,
	renderer *master.Renderer,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Slide {
	return &serviceImpl{
		repo:     repo,
		settings: settings,
		renderer: renderer,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// SetOrder replaces every slide with specs, numbered from zero.
func (s *serviceImpl) SetOrder(ctx context.Context, specs []dto.SlideSpec) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slide.SetOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, spec := range specs {
		if !spec.Master.Valid() {
			return failure.BadRequestFromString(fmt.Sprintf("unknown master %d", int(spec.Master))) //nolint:wrapcheck
		}
	}

	err = s.tx.Execute(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteAllTx(ctx, tx); err != nil {
			return fmt.Errorf("failed to delete slides: %w", err)
		}

		for i, spec := range specs {
			if err := s.repo.InsertTx(ctx, tx, spec.ToModel(i)); err != nil {
				return fmt.Errorf("failed to insert slide %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to store the slide order")

		return err //nolint:wrapcheck
	}

	log.Info().Int("slides", len(specs)).Msg("slide order stored")

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSlide)

	return nil
}

// Select maps counter onto the visible slides. A missing or non-positive
// counter, or an empty slide set, selects nothing.
func (s *serviceImpl) Select(ctx context.Context, counter *int64) (res dto.SlideRef, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slide.Select")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if counter == nil || *counter <= 0 {
		return res, nil
	}

	count, err := s.repo.CountVisible(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count slides")

		return res, fmt.Errorf("failed to count slides: %w", err)
	}

	if count == 0 {
		return res, nil
	}

	index := *counter % int64(count)
	scope.SetAttribute("slide.index", index)

	slide, found, err := s.repo.FindBySequence(ctx, index)
	if err != nil {
		log.Error().Err(err).Int64("index", index).Msg("failed to get slide")

		return res, fmt.Errorf("failed to get slide %d: %w", index, err)
	}

	if found {
		res.FromModel(slide)
	}

	return res, nil
}

// Render selects the slide for counter and renders it. Results are cached per
// slide and clock text.
func (s *serviceImpl) Render(ctx context.Context, counter *int64) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slide.Render")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ref, err := s.Select(ctx, counter)
	if err != nil {
		return res, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to render slide: %w", err)
	}

	now := timezone.Now()

	slideKey := noSlide
	if ref.Found {
		slideKey = fmt.Sprint(ref.Index)
	}

	cacheKey := shared.BuildCacheKey(cacheRenderSlide, slideKey, timezone.Strftime(now, settings.TimeFormat))

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for slide")

		return res, nil
	}

	res, err = s.renderer.Render(ctx, ref.ToMaster(), settings, now)
	if err != nil {
		log.Error().Err(err).Str("master", ref.Master.String()).Msg("failed to render slide")

		return res, fmt.Errorf("failed to render slide: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save slide to cache")
	}

	return res, nil
}
