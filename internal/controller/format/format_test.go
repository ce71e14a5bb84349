package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozelders/tutormatch/internal/model"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "400.00 ₺", Price(400))
	assert.Equal(t, "250.50 ₺", Price(250.5))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "45 dk", Duration(45))
	assert.Equal(t, "1 sa", Duration(60))
	assert.Equal(t, "1 sa 30 dk", Duration(90))
	assert.Equal(t, "2 sa", Duration(120))
}

func TestPaidStatus(t *testing.T) {
	assert.Equal(t, "ÖDENDİ", PaidStatus(true))
	assert.Equal(t, "ÖDENMEDİ", PaidStatus(false))
}

func TestStudentSummaryMasksPhone(t *testing.T) {
	s := model.NewStudent(1, "Buse", "05551234567", "Üniversite")
	got := StudentSummary(s)
	assert.Contains(t, got, "***-***-4567")
	assert.NotContains(t, got, "05551234567")
}

func TestAppointmentSummary(t *testing.T) {
	student := model.NewStudent(1, "Buse", "05551234567", "Üniversite")
	teacher := model.NewTeacher(1, "Ebru", "05559876543", "Matematik")
	lesson := &model.Lesson{ID: 1, Title: "Analiz", DurationMin: 90, HourlyPrice: 400}
	appt := &model.Appointment{ID: 1, StudentID: 1, TeacherID: 1, LessonID: 1, Date: "2025-03-10", Time: "14:00"}

	got := AppointmentSummary(appt, student, teacher, lesson)
	assert.Contains(t, got, "2025-03-10 14:00")
	assert.Contains(t, got, "ÖDENMEDİ")
	assert.Contains(t, got, "600.00 ₺")
}
