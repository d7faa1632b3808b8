package dto

import "seatpos/internal/domains/room/model"

type GetSlotsRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Date   string `json:"date"   validate:"required,day"`
}

type GetRoomsRequest struct {
	RoomTypeID string `json:"roomTypeId"`
}

type GetSlotsResponse struct {
	RoomID string       `json:"roomId"`
	Date   string       `json:"date"`
	Slots  []model.Slot `json:"slots"`
}
