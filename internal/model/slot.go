package model

// SlotKey identifies one bookable unit of a teacher's schedule. Using a
// struct key instead of a concatenated string rules out separator
// collisions between the date and time parts.
type SlotKey struct {
	TeacherID int64
	Date      string
	Time      string
}
