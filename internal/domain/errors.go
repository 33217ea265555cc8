package domain

import "errors"

var (
	// ErrInvalidDate is returned when a calendar date does not exist (e.g. 2024-02-30)
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidShiftList is returned when a shift list breaks its invariants
	ErrInvalidShiftList = errors.New("invalid shift list")

	// ErrShiftNotFound is returned when no shift has the requested id
	ErrShiftNotFound = errors.New("shift not found")

	// ErrInvalidColor is returned when a color cannot be parsed
	ErrInvalidColor = errors.New("invalid color")
)
