package service

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
	"github.com/ozelders/tutormatch/internal/storage"
)

// testEnv wires the full service stack against a snapshot file in a temp
// directory, the same way main does.
type testEnv struct {
	students     *repository.StudentRepository
	teachers     *repository.TeacherRepository
	lessons      *repository.LessonRepository
	appointments *repository.AppointmentRepository
	payments     *repository.PaymentRepository
	slots        *repository.SlotIndex
	snapshots    *storage.Manager

	users      *UserService
	teacherSvc *TeacherService
	bookings   *BookingService
	billing    *BillingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, filepath.Join(t.TempDir(), "snapshot.json"))
}

func newTestEnvAt(t *testing.T, path string) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	env := &testEnv{
		students:     repository.NewStudentRepository(),
		teachers:     repository.NewTeacherRepository(),
		lessons:      repository.NewLessonRepository(),
		appointments: repository.NewAppointmentRepository(),
		payments:     repository.NewPaymentRepository(),
		slots:        repository.NewSlotIndex(),
	}
	env.snapshots = storage.NewManager(path, logger,
		env.students, env.teachers, env.lessons, env.appointments, env.payments, env.slots)
	env.snapshots.Load()

	env.users = NewUserService(env.students, env.teachers, env.snapshots, logger)
	env.teacherSvc = NewTeacherService(env.teachers, env.lessons, env.appointments, env.snapshots, logger)
	env.bookings = NewBookingService(env.students, env.teachers, env.lessons, env.appointments, env.slots, env.snapshots, logger)
	env.billing = NewBillingService(env.appointments, env.lessons, env.payments, env.snapshots, logger)
	return env
}

// seed registers one student, one teacher and one lesson and returns them.
func (env *testEnv) seed(t *testing.T, durationMin int, hourly float64) (*model.Student, *model.Teacher, *model.Lesson) {
	t.Helper()
	ctx := context.Background()

	student, err := env.users.AddStudent(ctx, "Buse", "05551234567", "Üniversite")
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	teacher, err := env.users.AddTeacher(ctx, "Ebru", "05559876543", "Matematik")
	if err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	lesson, err := env.teacherSvc.AddLesson(ctx, teacher.ID, "Analiz - İntegral", durationMin, hourly)
	if err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return student, teacher, lesson
}
