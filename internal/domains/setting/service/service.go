package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"infopage/infras/otel"
	"infopage/internal/domains/setting/model/dto"
	"infopage/internal/domains/setting/repository"
	"infopage/shared/constant"
	gDto "infopage/shared/dto"
	"infopage/shared/validator"

	"github.com/rs/zerolog/log"
)

type Setting interface {
	Get(ctx context.Context) (dto.Settings, error)
}

type serviceImpl struct {
	repo repository.Setting
	otel otel.Otel
}

func New(repo repository.Setting, otel otel.Otel) Setting {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Get reads the settings table over the built-in defaults.
func (s *serviceImpl) Get(ctx context.Context) (res dto.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := dto.DefaultSettings()

	res = defaults
	res.FromModels(rows)

	if err := validator.ValidateStruct(&res); err != nil {
		log.Warn().Err(err).Str("time_format", res.TimeFormat).Msg("invalid time format setting, using the default")

		res.TimeFormat = defaults.TimeFormat
	}

	return res, nil
}
