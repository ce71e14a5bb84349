package model

type Student struct {
	ID         int64
	Name       string
	GradeLevel string

	// Appointments holds the ids of this student's bookings in the order
	// they were made.
	Appointments []int64

	phone string
}

func NewStudent(id int64, name, phone, grade string) *Student {
	return &Student{ID: id, Name: name, GradeLevel: grade, phone: phone}
}

// MaskedPhone is the only way to read the phone number.
func (s *Student) MaskedPhone() string {
	return maskPhone(s.phone)
}

func (s *Student) AddAppointment(appointmentID int64) {
	s.Appointments = append(s.Appointments, appointmentID)
}
