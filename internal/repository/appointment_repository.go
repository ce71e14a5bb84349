package repository

import (
	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository/base"
)

// AppointmentRepository is the authoritative id -> appointment mapping.
// Appointments are never deleted; the slot index is maintained alongside
// this map by the booking service.
type AppointmentRepository struct {
	byID  map[int64]*model.Appointment
	order []int64
	seq   *base.Sequence
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		byID: make(map[int64]*model.Appointment),
		seq:  base.NewSequence(),
	}
}

// Create allocates the next id and registers the appointment. All
// referential checks happen in the booking service before this call.
func (r *AppointmentRepository) Create(studentID, teacherID, lessonID int64, date, tm string) *model.Appointment {
	appt := &model.Appointment{
		ID:        r.seq.Next(),
		StudentID: studentID,
		TeacherID: teacherID,
		LessonID:  lessonID,
		Date:      date,
		Time:      tm,
	}
	r.byID[appt.ID] = appt
	r.order = append(r.order, appt.ID)
	return appt
}

// GetByID returns nil when no appointment has the given id.
func (r *AppointmentRepository) GetByID(id int64) *model.Appointment {
	return r.byID[id]
}

// List returns all appointments in booking order.
func (r *AppointmentRepository) List() []*model.Appointment {
	out := make([]*model.Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ListByTeacher returns the teacher's appointments in booking order.
func (r *AppointmentRepository) ListByTeacher(teacherID int64) []*model.Appointment {
	var out []*model.Appointment
	for _, id := range r.order {
		if a := r.byID[id]; a.TeacherID == teacherID {
			out = append(out, a)
		}
	}
	return out
}

// NextID returns the id the next Create would allocate.
func (r *AppointmentRepository) NextID() int64 {
	return r.seq.Peek()
}

// Restore replaces the repository contents wholesale. Only the snapshot
// load path calls it.
func (r *AppointmentRepository) Restore(appointments []*model.Appointment, nextID int64) {
	r.byID = make(map[int64]*model.Appointment, len(appointments))
	r.order = r.order[:0]
	for _, a := range appointments {
		r.byID[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	r.seq.Reset(nextID)
}
