package controller

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/controller/format"
	"github.com/ozelders/tutormatch/internal/controller/render"
	"github.com/ozelders/tutormatch/internal/service"
)

// Menu is the terminal front end. One command runs to completion,
// snapshot write included, before the next prompt is shown; an operation
// failure is displayed and the loop continues.
type Menu struct {
	users    *service.UserService
	teachers *service.TeacherService
	bookings *service.BookingService
	billing  *service.BillingService
	in       *bufio.Reader
	out      render.Renderer
	logger   *zap.Logger
}

func NewMenu(
	users *service.UserService,
	teachers *service.TeacherService,
	bookings *service.BookingService,
	billing *service.BillingService,
	in *bufio.Reader,
	out render.Renderer,
	logger *zap.Logger,
) *Menu {
	return &Menu{
		users:    users,
		teachers: teachers,
		bookings: bookings,
		billing:  billing,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run shows the main menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.out.Title("ÖZEL DERS & ÖĞRETMEN EŞLEŞTİRME SİSTEMİ")
		m.out.Line("1) Öğrenci ekle")
		m.out.Line("2) Öğretmen ekle")
		m.out.Line("3) Öğretmene ders ekle")
		m.out.Line("4) Randevu oluştur")
		m.out.Line("5) Randevu ödemesi yap")
		m.out.Line("6) Öğretmeni puanla")
		m.out.Line("7) Listele")
		m.out.Line("8) Haftalık program görseli")
		m.out.Line("0) Çıkış")

		choice, ok := m.readLine("Seçiminiz: ")
		if !ok {
			return
		}

		var err error
		switch choice {
		case "1":
			err = m.handleAddStudent(ctx)
		case "2":
			err = m.handleAddTeacher(ctx)
		case "3":
			err = m.handleAddLesson(ctx)
		case "4":
			err = m.handleCreateAppointment(ctx)
		case "5":
			err = m.handlePay(ctx)
		case "6":
			err = m.handleRateTeacher(ctx)
		case "7":
			m.handleList()
		case "8":
			err = m.handleWeekImage()
		case "0":
			m.out.Line("Çıkılıyor...")
			return
		default:
			m.out.Error("Geçersiz seçim.")
		}

		if err != nil {
			m.out.Error(ErrorMessage(err))
			m.logger.Debug("Operation failed", zap.Error(err))
		}
	}
}

func (m *Menu) handleAddStudent(ctx context.Context) error {
	name, _ := m.readLine("Öğrenci adı: ")
	phone, _ := m.readLine("Telefon: ")
	grade, _ := m.readLine("Seviye (örn: Lise/Üniversite): ")

	student, err := m.users.AddStudent(ctx, name, phone, grade)
	if err != nil {
		return err
	}
	m.out.Success("Eklendi: " + format.StudentSummary(student))
	return nil
}

func (m *Menu) handleAddTeacher(ctx context.Context) error {
	name, _ := m.readLine("Öğretmen adı: ")
	phone, _ := m.readLine("Telefon: ")
	branch, _ := m.readLine("Branş: ")

	teacher, err := m.users.AddTeacher(ctx, name, phone, branch)
	if err != nil {
		return err
	}
	m.out.Success("Eklendi: " + format.TeacherSummary(teacher))
	return nil
}

func (m *Menu) handleAddLesson(ctx context.Context) error {
	teacherID := m.readID("Öğretmen ID: ")
	title, _ := m.readLine("Ders adı: ")
	duration := m.readInt("Süre (dk): ")
	hourly := m.readFloat("Saatlik ücret (₺): ")

	lesson, err := m.teachers.AddLesson(ctx, teacherID, title, duration, hourly)
	if err != nil {
		return err
	}
	m.out.Success("Ders eklendi: " + format.LessonSummary(lesson))
	return nil
}

func (m *Menu) handleCreateAppointment(ctx context.Context) error {
	studentID := m.readID("Öğrenci ID: ")
	teacherID := m.readID("Öğretmen ID: ")
	lessonID := m.readID("Ders ID: ")
	date, _ := m.readLine("Tarih (YYYY-AA-GG): ")
	tm, _ := m.readLine("Saat (SS:DD): ")

	appt, err := m.bookings.CreateAppointment(ctx, studentID, teacherID, lessonID, date, tm)
	if err != nil {
		return err
	}
	student, teacher, lesson := m.bookings.Describe(appt)
	m.out.Success("Randevu oluşturuldu:")
	m.out.Line(format.AppointmentSummary(appt, student, teacher, lesson))
	return nil
}

func (m *Menu) handlePay(ctx context.Context) error {
	appointmentID := m.readID("Randevu ID: ")
	method, _ := m.readLine("Ödeme yöntemi (Kart/Havale/Nakit): ")

	payment, err := m.billing.Pay(ctx, appointmentID, method)
	if err != nil {
		return err
	}
	m.out.Success("Ödeme alındı: " + format.PaymentSummary(payment))
	return nil
}

func (m *Menu) handleRateTeacher(ctx context.Context) error {
	teacherID := m.readID("Öğretmen ID: ")
	score := m.readInt("Puan (1-5): ")

	if err := m.teachers.RateTeacher(ctx, teacherID, score); err != nil {
		return err
	}
	m.out.Success("Puan verildi.")
	return nil
}

func (m *Menu) handleList() {
	m.out.Title("Listele:")
	m.out.Line("1) Öğrenciler")
	m.out.Line("2) Öğretmenler")
	m.out.Line("3) Dersler")
	m.out.Line("4) Randevular")
	m.out.Line("5) Ödemeler")

	choice, ok := m.readLine("Seçiminiz: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		m.out.Title("--- ÖĞRENCİLER ---")
		students := m.users.ListStudents()
		if len(students) == 0 {
			m.out.Line("(Boş)")
		}
		for _, s := range students {
			m.out.Line(format.StudentSummary(s))
		}
	case "2":
		m.out.Title("--- ÖĞRETMENLER ---")
		teachers := m.users.ListTeachers()
		if len(teachers) == 0 {
			m.out.Line("(Boş)")
		}
		for _, t := range teachers {
			m.out.Line(format.TeacherSummary(t))
		}
	case "3":
		m.out.Title("--- DERSLER ---")
		lessons := m.teachers.ListLessons()
		if len(lessons) == 0 {
			m.out.Line("(Boş)")
		}
		for _, l := range lessons {
			m.out.Line(format.LessonSummary(l))
		}
	case "4":
		m.out.Title("--- RANDEVULAR ---")
		appts := m.bookings.ListAppointments()
		if len(appts) == 0 {
			m.out.Line("(Boş)")
		}
		for _, a := range appts {
			student, teacher, lesson := m.bookings.Describe(a)
			m.out.Line(format.AppointmentSummary(a, student, teacher, lesson))
		}
	case "5":
		m.out.Title("--- ÖDEMELER ---")
		payments := m.billing.ListPayments()
		if len(payments) == 0 {
			m.out.Line("(Boş)")
		}
		for _, p := range payments {
			m.out.Line(format.PaymentSummary(p))
		}
	default:
		m.out.Error("Geçersiz seçim.")
	}
}

// handleWeekImage exports a teacher's weekly schedule as a PNG next to the
// working directory.
func (m *Menu) handleWeekImage() error {
	teacherID := m.readID("Öğretmen ID: ")
	dateStr, _ := m.readLine("Hafta içindeki bir tarih (YYYY-AA-GG, boş = bugün): ")

	day := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return service.ErrInvalidDate
		}
		day = parsed
	}
	weekStart := startOfWeek(day)

	appts, err := m.teachers.WeekAppointments(teacherID, weekStart)
	if err != nil {
		return err
	}

	var teacherName string
	entries := make([]render.WeekEntry, 0, len(appts))
	for _, a := range appts {
		start, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, weekStart.Location())
		if err != nil {
			continue
		}
		entry := render.WeekEntry{Start: start, Duration: time.Hour, Paid: a.Paid}
		if lesson := m.teachers.LessonByID(a.LessonID); lesson != nil {
			entry.Title = lesson.Title
			entry.Duration = time.Duration(lesson.DurationMin) * time.Minute
		}
		entries = append(entries, entry)

		if teacherName == "" {
			_, teacher, _ := m.bookings.Describe(a)
			teacherName = teacher.Name
		}
	}
	if teacherName == "" {
		teacherName = fmt.Sprintf("Öğretmen #%d", teacherID)
	}

	png, err := render.WeekImage(teacherName, weekStart, entries)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("schedule_t%d_%s.png", teacherID, weekStart.Format("2006-01-02"))
	if err := os.WriteFile(name, png, 0o644); err != nil {
		return fmt.Errorf("write week image: %w", err)
	}

	m.logger.Info("Week image exported",
		zap.Int64("teacher_id", teacherID),
		zap.String("file", name),
		zap.Int("appointments", len(entries)),
	)
	m.out.Success("Program görseli kaydedildi: " + name)
	return nil
}

// startOfWeek returns midnight of the Monday of day's week.
func startOfWeek(day time.Time) time.Time {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// readLine prompts and reads one trimmed line. ok is false when input has
// ended.
func (m *Menu) readLine(prompt string) (string, bool) {
	m.out.Prompt(prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// readID keeps prompting until a whole number is entered.
func (m *Menu) readID(prompt string) int64 {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			m.out.Error("Hatalı giriş. Lütfen sayı girin.")
			continue
		}
		return id
	}
}

func (m *Menu) readInt(prompt string) int {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.out.Error("Hatalı giriş. Lütfen sayı girin.")
			continue
		}
		return n
	}
}

func (m *Menu) readFloat(prompt string) float64 {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0
		}
		raw = strings.ReplaceAll(raw, ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.out.Error("Hatalı giriş. Lütfen sayı girin (örn: 250 veya 250.5).")
			continue
		}
		return v
	}
}
