package model

// Appointment references its student, teacher and lesson by id; it never
// copies them. Date and Time are kept as the strings the booking was made
// with and compared verbatim.
type Appointment struct {
	ID        int64
	StudentID int64
	TeacherID int64
	LessonID  int64
	Date      string
	Time      string
	Paid      bool
	PaymentID *int64
}

// SlotKey returns the schedule slot this appointment occupies.
func (a *Appointment) SlotKey() SlotKey {
	return SlotKey{TeacherID: a.TeacherID, Date: a.Date, Time: a.Time}
}

// MarkPaid flips the paid flag and records the payment. The flag never
// reverts; the billing service guarantees MarkPaid runs at most once.
func (a *Appointment) MarkPaid(paymentID int64) {
	a.Paid = true
	a.PaymentID = &paymentID
}
