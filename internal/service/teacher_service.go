package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
)

// TeacherService manages a teacher's lesson catalogue, ratings and
// schedule views.
type TeacherService struct {
	teachers     *repository.TeacherRepository
	lessons      *repository.LessonRepository
	appointments *repository.AppointmentRepository
	snapshots    Persister
	logger       *zap.Logger
}

func NewTeacherService(
	teachers *repository.TeacherRepository,
	lessons *repository.LessonRepository,
	appointments *repository.AppointmentRepository,
	snapshots Persister,
	logger *zap.Logger,
) *TeacherService {
	return &TeacherService{
		teachers:     teachers,
		lessons:      lessons,
		appointments: appointments,
		snapshots:    snapshots,
		logger:       logger,
	}
}

// AddLesson creates a lesson and links it to the teacher.
func (s *TeacherService) AddLesson(ctx context.Context, teacherID int64, title string, durationMin int, hourlyPrice float64) (*model.Lesson, error) {
	teacher := s.teachers.GetByID(teacherID)
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	lesson := s.lessons.Create(title, durationMin, hourlyPrice)
	teacher.AddLesson(lesson.ID)

	if err := s.snapshots.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Lesson added",
		zap.Int64("lesson_id", lesson.ID),
		zap.Int64("teacher_id", teacherID),
		zap.String("title", title),
		zap.Int("duration_min", durationMin),
	)

	return lesson, nil
}

// RateTeacher records a 1-5 score on the teacher's running rating.
func (s *TeacherService) RateTeacher(ctx context.Context, teacherID int64, score int) error {
	teacher := s.teachers.GetByID(teacherID)
	if teacher == nil {
		return ErrTeacherNotFound
	}

	if score < 1 || score > 5 {
		return ErrScoreOutOfRange
	}

	teacher.Rate(score)

	if err := s.snapshots.Persist(ctx); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Teacher rated",
		zap.Int64("teacher_id", teacherID),
		zap.Int("score", score),
		zap.Float64("avg_rating", teacher.AvgRating()),
	)

	return nil
}

// ListLessons returns all lessons in creation order.
func (s *TeacherService) ListLessons() []*model.Lesson {
	return s.lessons.List()
}

// WeekAppointments returns the teacher's appointments whose date falls in
// the seven days starting at weekStart, for the schedule image export.
// Appointments with a date outside the window or an unparsable date are
// skipped.
func (s *TeacherService) WeekAppointments(teacherID int64, weekStart time.Time) ([]*model.Appointment, error) {
	teacher := s.teachers.GetByID(teacherID)
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	weekEnd := weekStart.AddDate(0, 0, 7)

	var out []*model.Appointment
	for _, a := range s.appointments.ListByTeacher(teacherID) {
		day, err := time.ParseInLocation("2006-01-02", a.Date, weekStart.Location())
		if err != nil {
			continue
		}
		if day.Before(weekStart) || !day.Before(weekEnd) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// LessonByID returns nil when no lesson has the given id.
func (s *TeacherService) LessonByID(id int64) *model.Lesson {
	return s.lessons.GetByID(id)
}
