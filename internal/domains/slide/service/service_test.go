package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"infopage/config"
	"infopage/infras/otel/mocks"
	"infopage/infras/postgres"
	eventMocks "infopage/internal/domains/event/mocks"
	settingDto "infopage/internal/domains/setting/model/dto"
	settingMocks "infopage/internal/domains/setting/service/mocks"
	slideMocks "infopage/internal/domains/slide/mocks"
	"infopage/internal/domains/slide/master"
	"infopage/internal/domains/slide/model"
	"infopage/internal/domains/slide/model/dto"
	"infopage/internal/domains/slide/service"
	"infopage/shared/cache"
	cacheMocks "infopage/shared/cache/mocks"
	"infopage/shared/timezone"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Slide
	repo     *slideMocks.MockSlide
	events   *eventMocks.MockEvent
	settings *settingMocks.MockSetting
	cache    *cacheMocks.MockRedisCache
	sql      sqlmock.Sqlmock
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := postgres.NewWithDB(sqlx.NewDb(mockDB, "postgres"))
	t.Cleanup(func() { _ = conn.Close() })

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     slideMocks.NewMockSlide(ctrl),
		events:   eventMocks.NewMockEvent(ctrl),
		settings: settingMocks.NewMockSetting(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		sql:      mock,
	}

	f.svc = service.New(f.repo, f.settings, master.NewRenderer(f.events), conn, config.Default(), f.cache, mocks.NewOtel())

	return f
}

func counter(v int64) *int64 { return &v }

func visible(sequenceNo int64) model.Slide {
	return model.Slide{
		SequenceNo: sql.NullInt64{Int64: sequenceNo, Valid: true},
		Master:     int(master.AllRoomsNow),
	}
}

func TestSelect_NoSlide(t *testing.T) {
	f := newFixture(t)

	for _, c := range []*int64{nil, counter(0), counter(-5)} {
		ref, err := f.svc.Select(context.Background(), c)

		require.NoError(t, err)
		assert.False(t, ref.Found)
	}

	f.repo.EXPECT().CountVisible(gomock.Any()).Return(0, nil)

	ref, err := f.svc.Select(context.Background(), counter(12))
	require.NoError(t, err)
	assert.False(t, ref.Found)
}

func TestSelect_Modulo(t *testing.T) {
	const slides = 3

	f := newFixture(t)

	f.repo.EXPECT().CountVisible(gomock.Any()).Return(slides, nil).AnyTimes()
	f.repo.EXPECT().FindBySequence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sequenceNo int64) (model.Slide, bool, error) {
			return visible(sequenceNo), true, nil
		}).AnyTimes()

	for c := int64(1); c <= 10; c++ {
		ref, err := f.svc.Select(context.Background(), counter(c))
		require.NoError(t, err)

		next, err := f.svc.Select(context.Background(), counter(c+slides))
		require.NoError(t, err)

		assert.True(t, ref.Found)
		assert.Equal(t, c%slides, ref.Index)
		assert.Equal(t, ref, next)
		assert.Equal(t, master.AllRoomsNow, ref.Master)
	}
}

func TestSelect_Errors(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountVisible(gomock.Any()).Return(0, errors.New("database error"))

	_, err := f.svc.Select(context.Background(), counter(1))
	assert.Error(t, err)

	f.repo.EXPECT().CountVisible(gomock.Any()).Return(4, nil)
	f.repo.EXPECT().FindBySequence(gomock.Any(), int64(1)).Return(model.Slide{}, false, nil)

	ref, err := f.svc.Select(context.Background(), counter(5))
	require.NoError(t, err)
	assert.False(t, ref.Found)
}

func TestSetOrder(t *testing.T) {
	room := int64(3)
	specs := []dto.SlideSpec{{Master: master.EventsWithNow, Room: &room}, {Master: master.AllRoomsNow}}

	t.Run("replaces slides in one transaction", func(t *testing.T) {
		f := newFixture(t)

		f.sql.ExpectBegin()
		f.sql.ExpectCommit()

		gomock.InOrder(
			f.repo.EXPECT().DeleteAllTx(gomock.Any(), gomock.Any()).Return(nil),
			f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), specs[0].ToModel(0)).Return(nil),
			f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), specs[1].ToModel(1)).Return(nil),
		)
		f.cache.EXPECT().Clear(gomock.Any(), "slide:*").Return(nil)

		require.NoError(t, f.svc.SetOrder(context.Background(), specs))
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("rolls back on insert failure", func(t *testing.T) {
		f := newFixture(t)

		f.sql.ExpectBegin()
		f.sql.ExpectRollback()

		f.repo.EXPECT().DeleteAllTx(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unknown room"))

		assert.Error(t, f.svc.SetOrder(context.Background(), specs))
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("rejects unknown masters", func(t *testing.T) {
		f := newFixture(t)

		assert.Error(t, f.svc.SetOrder(context.Background(), []dto.SlideSpec{{Master: master.Kind(5)}}))
	})
}

func TestRender(t *testing.T) {
	timezone.Init("UTC")

	settings := settingDto.DefaultSettings()

	t.Run("renders and caches on a miss", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().CountVisible(gomock.Any()).Return(1, nil)
		f.repo.EXPECT().FindBySequence(gomock.Any(), int64(0)).Return(visible(0), true, nil)
		f.settings.EXPECT().Get(gomock.Any()).Return(settings, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.events.EXPECT().InProgress(gomock.Any(), gomock.Any(), 10).Return(nil, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

		out, err := f.svc.Render(context.Background(), counter(7))

		require.NoError(t, err)
		assert.Contains(t, out, `<td class="title">In session</td>`)
	})

	t.Run("serves a cached page", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Get(gomock.Any()).Return(settings, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, value any) error {
				assert.Contains(t, key, "slide:render:none:")

				*value.(*string) = "cached"

				return nil
			})

		out, err := f.svc.Render(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "cached", out)
	})

	t.Run("falls back to an empty page without slides", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Get(gomock.Any()).Return(settings, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.Render(context.Background(), counter(0))

		require.NoError(t, err)
		assert.Contains(t, out, `<td class="title"></td>`)
	})

	t.Run("settings error", func(t *testing.T) {
		f := newFixture(t)

		f.settings.EXPECT().Get(gomock.Any()).Return(settingDto.Settings{}, errors.New("database error"))

		_, err := f.svc.Render(context.Background(), nil)
		assert.Error(t, err)
	})
}
