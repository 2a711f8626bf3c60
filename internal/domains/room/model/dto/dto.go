package dto

import (
	"fmt"

	"infopage/internal/domains/room/model"
)

type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
}

// String renders the room as a listing line.
func (r RoomResponse) String() string {
	return fmt.Sprintf("%d, %s", r.ID, r.Name)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
