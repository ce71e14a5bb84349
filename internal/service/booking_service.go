package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// BookingService creates appointments. It is the only writer of the slot
// index, so the check-then-reserve sequence in CreateAppointment runs
// without interleaving.
type BookingService struct {
	students     *repository.StudentRepository
	teachers     *repository.TeacherRepository
	lessons      *repository.LessonRepository
	appointments *repository.AppointmentRepository
	slots        *repository.SlotIndex
	snapshots    Persister
	logger       *zap.Logger
}

func NewBookingService(
	students *repository.StudentRepository,
	teachers *repository.TeacherRepository,
	lessons *repository.LessonRepository,
	appointments *repository.AppointmentRepository,
	slots *repository.SlotIndex,
	snapshots Persister,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		students:     students,
		teachers:     teachers,
		lessons:      lessons,
		appointments: appointments,
		slots:        slots,
		snapshots:    snapshots,
		logger:       logger,
	}
}

// CreateAppointment books a lesson slot for a student. Existence checks run
// first, then the lesson-ownership check, then date/time syntax, then slot
// occupancy. On success the appointment, the slot reservation and the
// student's booking list are updated together and the snapshot is written
// before returning.
func (s *BookingService) CreateAppointment(ctx context.Context, studentID, teacherID, lessonID int64, date, tm string) (*model.Appointment, error) {
	student := s.students.GetByID(studentID)
	if student == nil {
		return nil, ErrStudentNotFound
	}

	teacher := s.teachers.GetByID(teacherID)
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	if s.lessons.GetByID(lessonID) == nil {
		return nil, ErrLessonNotFound
	}

	if !teacher.HasLesson(lessonID) {
		return nil, ErrLessonNotOwned
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(timeLayout, tm); err != nil {
		return nil, ErrInvalidTime
	}

	key := model.SlotKey{TeacherID: teacherID, Date: date, Time: tm}
	if s.slots.IsOccupied(key) {
		return nil, ErrSlotTaken
	}

	appt := s.appointments.Create(studentID, teacherID, lessonID, date, tm)
	s.slots.Reserve(key, appt.ID)
	student.AddAppointment(appt.ID)

	if err := s.snapshots.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("student_id", studentID),
		zap.Int64("teacher_id", teacherID),
		zap.Int64("lesson_id", lessonID),
		zap.String("date", date),
		zap.String("time", tm),
	)

	return appt, nil
}

// ListAppointments returns all appointments in booking order.
func (s *BookingService) ListAppointments() []*model.Appointment {
	return s.appointments.List()
}

// Describe resolves the entities an appointment refers to, for display.
// By the store's referential invariants none of them can be missing.
func (s *BookingService) Describe(a *model.Appointment) (*model.Student, *model.Teacher, *model.Lesson) {
	return s.students.GetByID(a.StudentID), s.teachers.GetByID(a.TeacherID), s.lessons.GetByID(a.LessonID)
}
