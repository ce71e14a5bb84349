package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
)

// UserService registers students and teachers.
type UserService struct {
	students  *repository.StudentRepository
	teachers  *repository.TeacherRepository
	snapshots Persister
	logger    *zap.Logger
}

func NewUserService(
	students *repository.StudentRepository,
	teachers *repository.TeacherRepository,
	snapshots Persister,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		students:  students,
		teachers:  teachers,
		snapshots: snapshots,
		logger:    logger,
	}
}

// AddStudent registers a student and persists the snapshot.
func (s *UserService) AddStudent(ctx context.Context, name, phone, grade string) (*model.Student, error) {
	student := s.students.Create(name, phone, grade)

	if err := s.snapshots.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Student registered",
		zap.Int64("student_id", student.ID),
		zap.String("grade", grade),
	)

	return student, nil
}

// AddTeacher registers a teacher and persists the snapshot.
func (s *UserService) AddTeacher(ctx context.Context, name, phone, branch string) (*model.Teacher, error) {
	teacher := s.teachers.Create(name, phone, branch)

	if err := s.snapshots.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Teacher registered",
		zap.Int64("teacher_id", teacher.ID),
		zap.String("branch", branch),
	)

	return teacher, nil
}

// ListStudents returns all students in registration order.
func (s *UserService) ListStudents() []*model.Student {
	return s.students.List()
}

// ListTeachers returns all teachers in registration order.
func (s *UserService) ListTeachers() []*model.Teacher {
	return s.teachers.List()
}
