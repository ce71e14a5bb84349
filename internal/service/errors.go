package service

import "errors"

// Domain errors returned by the booking and billing operations. The
// controller maps them to user-facing messages; no failure here ever
// terminates the menu loop.
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrTeacherNotFound     = errors.New("teacher not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrLessonNotOwned      = errors.New("lesson does not belong to this teacher")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime         = errors.New("time must be in HH:MM format")
	ErrSlotTaken           = errors.New("teacher is already booked at this date and time")
	ErrAlreadyPaid         = errors.New("appointment is already paid")
	ErrScoreOutOfRange     = errors.New("score must be between 1 and 5")
)
