package controller

import (
	"errors"

	"github.com/ozelders/tutormatch/internal/service"
)

// ErrorMessage maps a domain error to the message shown in the menu.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return "Öğrenci bulunamadı."
	case errors.Is(err, service.ErrTeacherNotFound):
		return "Öğretmen bulunamadı."
	case errors.Is(err, service.ErrLessonNotFound):
		return "Ders bulunamadı."
	case errors.Is(err, service.ErrAppointmentNotFound):
		return "Randevu bulunamadı."
	case errors.Is(err, service.ErrLessonNotOwned):
		return "Bu ders seçilen öğretmene ait değil."
	case errors.Is(err, service.ErrInvalidDate):
		return "Tarih biçimi geçersiz, YYYY-AA-GG bekleniyor."
	case errors.Is(err, service.ErrInvalidTime):
		return "Saat biçimi geçersiz, SS:DD bekleniyor."
	case errors.Is(err, service.ErrSlotTaken):
		return "Öğretmenin bu tarih ve saatte başka randevusu var."
	case errors.Is(err, service.ErrAlreadyPaid):
		return "Bu randevu zaten ödenmiş."
	case errors.Is(err, service.ErrScoreOutOfRange):
		return "Puan 1 ile 5 arasında olmalı."
	default:
		return "Bir hata oluştu: " + err.Error()
	}
}
