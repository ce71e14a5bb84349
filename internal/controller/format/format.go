package format

import (
	"fmt"

	"github.com/ozelders/tutormatch/internal/model"
)

// Price formats an amount in lira.
func Price(amount float64) string {
	return fmt.Sprintf("%.2f ₺", amount)
}

// Duration formats a length in minutes as hours and minutes.
func Duration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d dk", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d sa", hours)
	}
	return fmt.Sprintf("%d sa %d dk", hours, mins)
}

// PaidStatus formats an appointment's payment state.
func PaidStatus(paid bool) string {
	if paid {
		return "ÖDENDİ"
	}
	return "ÖDENMEDİ"
}

// StudentSummary is the one-line display form of a student.
func StudentSummary(s *model.Student) string {
	return fmt.Sprintf("Öğrenci #%d | %s | Seviye: %s | Tel: %s",
		s.ID, s.Name, s.GradeLevel, s.MaskedPhone())
}

// TeacherSummary is the one-line display form of a teacher.
func TeacherSummary(t *model.Teacher) string {
	return fmt.Sprintf("Öğretmen #%d | %s | Branş: %s | Puan: %.1f | Tel: %s",
		t.ID, t.Name, t.Branch, t.AvgRating(), t.MaskedPhone())
}

// LessonSummary is the one-line display form of a lesson.
func LessonSummary(l *model.Lesson) string {
	return fmt.Sprintf("Ders #%d | %s | Süre: %s | Saatlik: %s",
		l.ID, l.Title, Duration(l.DurationMin), Price(l.HourlyPrice))
}

// AppointmentSummary is the display form of an appointment with its
// resolved student, teacher and lesson.
func AppointmentSummary(a *model.Appointment, s *model.Student, t *model.Teacher, l *model.Lesson) string {
	return fmt.Sprintf("Randevu #%d | %s %s | %s\n  Öğrenci: %s (#%d)\n  Öğretmen: %s (#%d)\n  Ders: %s (#%d) | Tutar: %s",
		a.ID, a.Date, a.Time, PaidStatus(a.Paid),
		s.Name, s.ID,
		t.Name, t.ID,
		l.Title, l.ID, Price(l.Total()))
}

// PaymentSummary is the one-line display form of a payment.
func PaymentSummary(p *model.Payment) string {
	return fmt.Sprintf("Ödeme #%d | Randevu #%d | %s | Yöntem: %s | Ref: %s | %s",
		p.ID, p.AppointmentID, Price(p.Amount), p.Method,
		p.Reference.String(), p.PaidAt.Format("2006-01-02 15:04"))
}
