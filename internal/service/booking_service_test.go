package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozelders/tutormatch/internal/model"
)

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	appt, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	require.NoError(t, err)

	assert.Equal(t, int64(1), appt.ID)
	assert.Equal(t, student.ID, appt.StudentID)
	assert.Equal(t, teacher.ID, appt.TeacherID)
	assert.Equal(t, lesson.ID, appt.LessonID)
	assert.False(t, appt.Paid)
	assert.Equal(t, []int64{appt.ID}, student.Appointments)
	assert.True(t, env.slots.IsOccupied(model.SlotKey{TeacherID: teacher.ID, Date: "2025-03-10", Time: "14:00"}))
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	other, err := env.users.AddStudent(ctx, "Ali", "05551112233", "Lise")
	require.NoError(t, err)

	_, err = env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	require.NoError(t, err)

	// Same teacher, date and time: rejected no matter which student or
	// lesson asks.
	_, err = env.bookings.CreateAppointment(ctx, other.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different time on the same day is free.
	_, err = env.bookings.CreateAppointment(ctx, other.ID, teacher.ID, lesson.ID, "2025-03-10", "15:00")
	assert.NoError(t, err)
}

func TestCreateAppointmentNotFound(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	_, err := env.bookings.CreateAppointment(ctx, 99, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = env.bookings.CreateAppointment(ctx, student.ID, 99, lesson.ID, "2025-03-10", "14:00")
	assert.ErrorIs(t, err, ErrTeacherNotFound)

	_, err = env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, 99, "2025-03-10", "14:00")
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestCreateAppointmentLessonNotOwned(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, _ := env.seed(t, 60, 400)
	ctx := context.Background()

	other, err := env.users.AddTeacher(ctx, "Kemal", "05554445566", "Fizik")
	require.NoError(t, err)
	foreign, err := env.teacherSvc.AddLesson(ctx, other.ID, "Mekanik", 60, 300)
	require.NoError(t, err)

	// Booking the lesson with its own teacher works.
	_, err = env.bookings.CreateAppointment(ctx, student.ID, other.ID, foreign.ID, "2025-03-10", "14:00")
	assert.NoError(t, err)

	// Student, teacher and lesson all exist, but the lesson belongs to
	// the other teacher.
	_, err = env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, foreign.ID, "2025-03-11", "14:00")
	assert.ErrorIs(t, err, ErrLessonNotOwned)
}

func TestCreateAppointmentInvalidFormat(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	tests := []struct {
		name string
		date string
		time string
		want error
	}{
		{"bad date word", "tomorrow", "14:00", ErrInvalidDate},
		{"bad date order", "10-03-2025", "14:00", ErrInvalidDate},
		{"month thirteen", "2025-13-10", "14:00", ErrInvalidDate},
		{"bad time word", "2025-03-10", "noon", ErrInvalidTime},
		{"hour out of range", "2025-03-10", "25:00", ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, tt.date, tt.time)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateAppointmentChecksExistenceBeforeFormat(t *testing.T) {
	env := newTestEnv(t)
	_, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	// Missing student wins over a bad date.
	_, err := env.bookings.CreateAppointment(ctx, 99, teacher.ID, lesson.ID, "not-a-date", "14:00")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestCreateAppointmentChecksOwnershipBeforeFormat(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, _ := env.seed(t, 60, 400)
	ctx := context.Background()

	other, err := env.users.AddTeacher(ctx, "Kemal", "05554445566", "Fizik")
	require.NoError(t, err)
	foreign, err := env.teacherSvc.AddLesson(ctx, other.ID, "Mekanik", 60, 300)
	require.NoError(t, err)

	_, err = env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, foreign.ID, "not-a-date", "14:00")
	assert.ErrorIs(t, err, ErrLessonNotOwned)
}

func TestDescribe(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	appt, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	require.NoError(t, err)

	s, te, l := env.bookings.Describe(appt)
	assert.Same(t, student, s)
	assert.Same(t, teacher, te)
	assert.Same(t, lesson, l)
}
