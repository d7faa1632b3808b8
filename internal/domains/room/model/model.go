package model

import (
	"fmt"
	gModel "seatpos/shared/model"
	"seatpos/shared/money"
	"strconv"
	"strings"
)

const (
	EntityName = "room"

	CacheKeyByBranch   = "room:by-branch"
	CacheKeyByType     = "room:by-type"
	CacheKeyDetail     = "room:detail"
	CacheKeyTypes      = "room:types"
	CacheKeyWithStatus = "room:with-status"
	CacheKeySlots      = "room:slots"
)

// Occupancy is the live state of a room, unrelated to the status of its bookings.
type Occupancy string

const (
	OccupancyEmpty Occupancy = "EMPTY"
	OccupancyUsing Occupancy = "USING"
)

type SlotStatus string

const (
	SlotStatusValid  SlotStatus = "Valid"
	SlotStatusBooked SlotStatus = "Booked"
)

type RoomType struct {
	ID          gModel.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type Room struct {
	ID       gModel.ID   `json:"id"`
	Name     string      `json:"name"`
	Capacity int         `json:"capacity"`
	Price    money.Money `json:"price"`
	Images   []string    `json:"images,omitempty"`
	Location string      `json:"location,omitempty"`
	RoomType *RoomType   `json:"roomType,omitempty"`
	Active   bool        `json:"active"`
	Status   Occupancy   `json:"status,omitempty"`
}

// Slot is a contiguous window the remote service reports for a room on one day.
type Slot struct {
	ID        gModel.ID  `json:"id,omitempty"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Status    SlotStatus `json:"status"`
}

// Contains reports whether the slot is bookable and covers [start, end], in minutes since midnight.
func (s Slot) Contains(start, end int) bool {
	if s.Status != SlotStatusValid {
		return false
	}

	from, err := ClockMinutes(s.StartTime)
	if err != nil {
		return false
	}

	to, err := ClockMinutes(s.EndTime)
	if err != nil {
		return false
	}

	return start >= from && end <= to
}

// ClockMinutes converts "15:04" or "15:04:05" to minutes since midnight. Seconds are ignored.
func ClockMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}

	return hours*60 + minutes, nil
}
