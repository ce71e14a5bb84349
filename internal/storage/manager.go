package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
)

// Manager owns the snapshot file. It serializes the whole entity store
// after every mutation and reconstructs it at startup, rebuilding the slot
// index as the last step.
type Manager struct {
	path   string
	logger *zap.Logger

	students     *repository.StudentRepository
	teachers     *repository.TeacherRepository
	lessons      *repository.LessonRepository
	appointments *repository.AppointmentRepository
	payments     *repository.PaymentRepository
	slots        *repository.SlotIndex
}

func NewManager(
	path string,
	logger *zap.Logger,
	students *repository.StudentRepository,
	teachers *repository.TeacherRepository,
	lessons *repository.LessonRepository,
	appointments *repository.AppointmentRepository,
	payments *repository.PaymentRepository,
	slots *repository.SlotIndex,
) *Manager {
	return &Manager{
		path:         path,
		logger:       logger,
		students:     students,
		teachers:     teachers,
		lessons:      lessons,
		appointments: appointments,
		payments:     payments,
		slots:        slots,
	}
}

// Persist writes the full dataset to the snapshot file. The write completes
// before Persist returns; there is no asynchronous flush.
func (m *Manager) Persist(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := SaveSnapshot(m.path, m.snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (m *Manager) snapshot() Snapshot {
	snap := Snapshot{
		NextIDs: NextIDs{
			Student:     m.students.NextID(),
			Teacher:     m.teachers.NextID(),
			Lesson:      m.lessons.NextID(),
			Appointment: m.appointments.NextID(),
			Payment:     m.payments.NextID(),
		},
	}

	for _, s := range m.students.List() {
		snap.Students = append(snap.Students, PersistStudent{
			ID:           s.ID,
			Name:         s.Name,
			PhoneMasked:  s.MaskedPhone(),
			Grade:        s.GradeLevel,
			Appointments: append([]int64(nil), s.Appointments...),
		})
	}
	for _, t := range m.teachers.List() {
		snap.Teachers = append(snap.Teachers, PersistTeacher{
			ID:      t.ID,
			Name:    t.Name,
			Branch:  t.Branch,
			Lessons: append([]int64(nil), t.Lessons...),
		})
	}
	for _, l := range m.lessons.List() {
		snap.Lessons = append(snap.Lessons, PersistLesson{
			ID:       l.ID,
			Title:    l.Title,
			Duration: l.DurationMin,
			Hourly:   l.HourlyPrice,
		})
	}
	for _, a := range m.appointments.List() {
		snap.Appointments = append(snap.Appointments, PersistAppointment{
			ID:        a.ID,
			StudentID: a.StudentID,
			TeacherID: a.TeacherID,
			LessonID:  a.LessonID,
			Date:      a.Date,
			Time:      a.Time,
			Paid:      a.Paid,
		})
	}
	return snap
}

// Load reads the snapshot file and populates the repositories. A missing
// file is the normal first run and leaves the store empty. An unreadable
// or inconsistent snapshot is abandoned the same way: the failure is logged
// and the store starts empty, never surfaced to the user.
func (m *Manager) Load() {
	snap, err := LoadSnapshot(m.path)
	if errors.Is(err, os.ErrNotExist) {
		m.logger.Info("No snapshot file, starting with an empty store",
			zap.String("path", m.path))
		return
	}
	if err != nil {
		m.logger.Warn("Snapshot unreadable, starting with an empty store",
			zap.String("path", m.path),
			zap.Error(err))
		return
	}

	if err := m.restore(snap); err != nil {
		m.logger.Warn("Snapshot rejected, starting with an empty store",
			zap.String("path", m.path),
			zap.Error(err))
		return
	}

	m.logger.Info("Snapshot loaded",
		zap.String("path", m.path),
		zap.Int("students", len(snap.Students)),
		zap.Int("teachers", len(snap.Teachers)),
		zap.Int("lessons", len(snap.Lessons)),
		zap.Int("appointments", len(snap.Appointments)))
}

// restore rebuilds the store in dependency order: students and teachers
// first, then lessons, then appointments, slot index last. Everything is
// validated against a staging set before any repository is touched, so a
// rejected snapshot leaves the store untouched.
func (m *Manager) restore(snap Snapshot) error {
	for kind, next := range map[string]int64{
		"student":     snap.NextIDs.Student,
		"teacher":     snap.NextIDs.Teacher,
		"lesson":      snap.NextIDs.Lesson,
		"appointment": snap.NextIDs.Appointment,
		"payment":     snap.NextIDs.Payment,
	} {
		if next < 1 {
			return fmt.Errorf("%s counter %d below 1", kind, next)
		}
	}

	students := make([]*model.Student, 0, len(snap.Students))
	studentByID := make(map[int64]*model.Student, len(snap.Students))
	for _, ps := range snap.Students {
		if ps.ID < 1 || ps.ID >= snap.NextIDs.Student {
			return fmt.Errorf("student %d outside counter range", ps.ID)
		}
		if _, dup := studentByID[ps.ID]; dup {
			return fmt.Errorf("duplicate student id %d", ps.ID)
		}
		// The real phone number is gone; the persisted masked string
		// becomes the stored value, which masks to itself on display.
		s := model.NewStudent(ps.ID, ps.Name, ps.PhoneMasked, ps.Grade)
		s.Appointments = append([]int64(nil), ps.Appointments...)
		students = append(students, s)
		studentByID[s.ID] = s
	}

	teachers := make([]*model.Teacher, 0, len(snap.Teachers))
	teacherByID := make(map[int64]*model.Teacher, len(snap.Teachers))
	for _, pt := range snap.Teachers {
		if pt.ID < 1 || pt.ID >= snap.NextIDs.Teacher {
			return fmt.Errorf("teacher %d outside counter range", pt.ID)
		}
		if _, dup := teacherByID[pt.ID]; dup {
			return fmt.Errorf("duplicate teacher id %d", pt.ID)
		}
		t := model.NewTeacher(pt.ID, pt.Name, "", pt.Branch)
		for _, lessonID := range pt.Lessons {
			t.AddLesson(lessonID)
		}
		teachers = append(teachers, t)
		teacherByID[t.ID] = t
	}

	lessons := make([]*model.Lesson, 0, len(snap.Lessons))
	lessonByID := make(map[int64]*model.Lesson, len(snap.Lessons))
	for _, pl := range snap.Lessons {
		if pl.ID < 1 || pl.ID >= snap.NextIDs.Lesson {
			return fmt.Errorf("lesson %d outside counter range", pl.ID)
		}
		if _, dup := lessonByID[pl.ID]; dup {
			return fmt.Errorf("duplicate lesson id %d", pl.ID)
		}
		l := &model.Lesson{ID: pl.ID, Title: pl.Title, DurationMin: pl.Duration, HourlyPrice: pl.Hourly}
		lessons = append(lessons, l)
		lessonByID[l.ID] = l
	}

	// Each lesson id a teacher lists must resolve, and no lesson may be
	// listed by two teachers.
	lessonOwner := make(map[int64]int64, len(lessonByID))
	for _, t := range teachers {
		for _, lessonID := range t.Lessons {
			if _, ok := lessonByID[lessonID]; !ok {
				return fmt.Errorf("teacher %d lists unknown lesson %d", t.ID, lessonID)
			}
			if owner, taken := lessonOwner[lessonID]; taken {
				return fmt.Errorf("lesson %d listed by teachers %d and %d", lessonID, owner, t.ID)
			}
			lessonOwner[lessonID] = t.ID
		}
	}

	appointments := make([]*model.Appointment, 0, len(snap.Appointments))
	appointmentByID := make(map[int64]*model.Appointment, len(snap.Appointments))
	for _, pa := range snap.Appointments {
		if pa.ID < 1 || pa.ID >= snap.NextIDs.Appointment {
			return fmt.Errorf("appointment %d outside counter range", pa.ID)
		}
		if _, dup := appointmentByID[pa.ID]; dup {
			return fmt.Errorf("duplicate appointment id %d", pa.ID)
		}
		if _, ok := studentByID[pa.StudentID]; !ok {
			return fmt.Errorf("appointment %d references unknown student %d", pa.ID, pa.StudentID)
		}
		teacher, ok := teacherByID[pa.TeacherID]
		if !ok {
			return fmt.Errorf("appointment %d references unknown teacher %d", pa.ID, pa.TeacherID)
		}
		if _, ok := lessonByID[pa.LessonID]; !ok {
			return fmt.Errorf("appointment %d references unknown lesson %d", pa.ID, pa.LessonID)
		}
		if !teacher.HasLesson(pa.LessonID) {
			return fmt.Errorf("appointment %d uses lesson %d not offered by teacher %d", pa.ID, pa.LessonID, pa.TeacherID)
		}
		a := &model.Appointment{
			ID:        pa.ID,
			StudentID: pa.StudentID,
			TeacherID: pa.TeacherID,
			LessonID:  pa.LessonID,
			Date:      pa.Date,
			Time:      pa.Time,
			Paid:      pa.Paid,
		}
		appointments = append(appointments, a)
		appointmentByID[a.ID] = a
	}

	for _, s := range students {
		for _, apptID := range s.Appointments {
			if _, ok := appointmentByID[apptID]; !ok {
				return fmt.Errorf("student %d lists unknown appointment %d", s.ID, apptID)
			}
		}
	}

	// Detect double-booked slots before committing anything.
	staged := repository.NewSlotIndex()
	if err := staged.Rebuild(appointments); err != nil {
		return err
	}

	m.students.Restore(students, snap.NextIDs.Student)
	m.teachers.Restore(teachers, snap.NextIDs.Teacher)
	m.lessons.Restore(lessons, snap.NextIDs.Lesson)
	m.appointments.Restore(appointments, snap.NextIDs.Appointment)
	m.payments.Restore(snap.NextIDs.Payment)
	return m.slots.Rebuild(appointments)
}
