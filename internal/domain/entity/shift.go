package entity

import (
	"slices"

	"github.com/diegoclair/shift-cycle-bot/internal/domain"
)

// ShiftType is one named, colored slot of the rotation
type ShiftType struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label" validate:"shiftlabel"`
	Color Color  `json:"color"`
}

// DefaultShifts returns the built-in day/night/rest cycle.
// A fresh slice is returned on every call so callers may modify it.
func DefaultShifts() []ShiftType {
	return []ShiftType{
		{ID: domain.ShiftDay, Label: "白班", Color: 0xFF2196F3},
		{ID: domain.ShiftNight, Label: "夜班", Color: 0xFF9C27B0},
		{ID: domain.ShiftRest, Label: "休班", Color: 0xFF4CAF50},
	}
}

// IndexOfShift returns the position of the shift with the given id, or -1
func IndexOfShift(shifts []ShiftType, id string) int {
	return slices.IndexFunc(shifts, func(s ShiftType) bool { return s.ID == id })
}
