package model

// Lesson is immutable once created. Ownership is recorded on the teacher
// side: a lesson id appears in exactly one teacher's lesson list.
type Lesson struct {
	ID          int64
	Title       string
	DurationMin int
	HourlyPrice float64
}

// Total converts the hourly price into the price of one session.
func (l *Lesson) Total() float64 {
	return l.HourlyPrice * float64(l.DurationMin) / 60
}
