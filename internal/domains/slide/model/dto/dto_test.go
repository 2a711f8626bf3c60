package dto_test

import (
	"database/sql"
	"testing"

	"infopage/internal/domains/slide/master"
	"infopage/internal/domains/slide/model"
	"infopage/internal/domains/slide/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name     string
		order    string
		expected []dto.SlideSpec
		wantErr  bool
	}{
		{
			name:  "rooms and the all rooms slide",
			order: "3, -1,7",
			expected: []dto.SlideSpec{
				{Master: master.EventsWithNow, Room: ptr(int64(3))},
				{Master: master.AllRoomsNow},
				{Master: master.EventsWithNow, Room: ptr(int64(7))},
			},
		},
		{
			name:    "not a number",
			order:   "3,hall",
			wantErr: true,
		},
		{
			name:    "empty entry",
			order:   "3,,4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := dto.ParseOrder(tt.order)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, specs)
		})
	}
}

func TestSlideSpec_ToModel(t *testing.T) {
	slide := dto.SlideSpec{Master: master.EventsWithNow, Room: ptr(int64(3))}.ToModel(4)

	assert.Equal(t, model.Slide{
		SequenceNo: sql.NullInt64{Int64: 4, Valid: true},
		Room:       sql.NullInt64{Int64: 3, Valid: true},
		Master:     0,
	}, slide)

	slide = dto.SlideSpec{Master: master.AllRoomsNow}.ToModel(0)
	assert.False(t, slide.Room.Valid)
	assert.Equal(t, 2, slide.Master)
}

func TestSlideRef(t *testing.T) {
	var ref dto.SlideRef

	assert.Equal(t, master.Slide{Kind: master.EventsWithNow}, ref.ToMaster())

	ref.FromModel(model.Slide{
		SequenceNo: sql.NullInt64{Int64: 2, Valid: true},
		Room:       sql.NullInt64{Int64: 3, Valid: true},
		Master:     1,
		Title:      sql.NullString{String: "Main stage", Valid: true},
		MaxRows:    sql.NullInt64{Int64: 5, Valid: true},
		RoomName:   sql.NullString{String: "Room A", Valid: true},
	})

	assert.Equal(t, master.Slide{
		Kind:     master.Events,
		Title:    ptr("Main stage"),
		RoomID:   ptr(int64(3)),
		RoomName: "Room A",
		MaxRows:  ptr(5),
	}, ref.ToMaster())
	assert.Equal(t, int64(2), ref.Index)
	assert.True(t, ref.Found)
}
