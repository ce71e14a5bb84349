package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/ozelders/tutormatch/internal/app"
	"github.com/ozelders/tutormatch/internal/config"
	"github.com/ozelders/tutormatch/internal/controller"
	"github.com/ozelders/tutormatch/internal/controller/render"
	"github.com/ozelders/tutormatch/internal/repository"
	"github.com/ozelders/tutormatch/internal/service"
	"github.com/ozelders/tutormatch/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	students := repository.NewStudentRepository()
	teachers := repository.NewTeacherRepository()
	lessons := repository.NewLessonRepository()
	appointments := repository.NewAppointmentRepository()
	payments := repository.NewPaymentRepository()
	slots := repository.NewSlotIndex()

	snapshots := storage.NewManager(cfg.SnapshotPath, logger,
		students, teachers, lessons, appointments, payments, slots)
	snapshots.Load()

	users := service.NewUserService(students, teachers, snapshots, logger)
	teacherSvc := service.NewTeacherService(teachers, lessons, appointments, snapshots, logger)
	bookings := service.NewBookingService(students, teachers, lessons, appointments, slots, snapshots, logger)
	billing := service.NewBillingService(appointments, lessons, payments, snapshots, logger)

	renderer := render.Select(cfg.Display, os.Stdout)

	menu := controller.NewMenu(users, teacherSvc, bookings, billing,
		bufio.NewReader(os.Stdin), renderer, logger)

	logger.Sugar().Infow("Starting tutormatch",
		"environment", cfg.Environment,
		"snapshot_path", cfg.SnapshotPath)

	menu.Run(context.Background())
}
