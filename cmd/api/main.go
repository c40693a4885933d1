package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dougladias/vida-plena-api/internal/config"
	"github.com/dougladias/vida-plena-api/internal/email"
	"github.com/dougladias/vida-plena-api/internal/handler"
	consultationHandler "github.com/dougladias/vida-plena-api/internal/handler/consultation"
	doctorHandler "github.com/dougladias/vida-plena-api/internal/handler/doctor"
	medicalRecordHandler "github.com/dougladias/vida-plena-api/internal/handler/medicalrecord"
	patientHandler "github.com/dougladias/vida-plena-api/internal/handler/patient"
	prescriptionHandler "github.com/dougladias/vida-plena-api/internal/handler/prescription"
	sessionHandler "github.com/dougladias/vida-plena-api/internal/handler/session"
	userHandler "github.com/dougladias/vida-plena-api/internal/handler/user"
	"github.com/dougladias/vida-plena-api/internal/middleware"
	"github.com/dougladias/vida-plena-api/internal/repository/postgres"
	"github.com/dougladias/vida-plena-api/internal/router"
	authService "github.com/dougladias/vida-plena-api/internal/service/auth"
	consultationService "github.com/dougladias/vida-plena-api/internal/service/consultation"
	doctorService "github.com/dougladias/vida-plena-api/internal/service/doctor"
	eventService "github.com/dougladias/vida-plena-api/internal/service/event"
	medicalRecordService "github.com/dougladias/vida-plena-api/internal/service/medicalrecord"
	patientService "github.com/dougladias/vida-plena-api/internal/service/patient"
	prescriptionService "github.com/dougladias/vida-plena-api/internal/service/prescription"
	"github.com/dougladias/vida-plena-api/pkg/auth"
	"github.com/dougladias/vida-plena-api/pkg/logger"
	"github.com/dougladias/vida-plena-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Env, cfg.LogLevel)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)
	medicalRecordRepo := postgres.NewMedicalRecordRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Mutations land change feed events through the event recorder.
	eventSvc := eventService.NewService(outboxRepo)

	var emailSvc email.Service = email.Noop{}
	if cfg.SMTP.Enabled {
		emailSvc = email.NewSMTPService(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authSvc := authService.NewService(userRepo, jwtSvc)
	patientSvc := patientService.NewService(patientRepo, eventSvc)
	doctorSvc := doctorService.NewService(doctorRepo, eventSvc)
	consultationSvc := consultationService.NewService(consultationRepo, eventSvc, emailSvc)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo, eventSvc)
	medicalRecordSvc := medicalRecordService.NewService(medicalRecordRepo, eventSvc)

	// Handlers
	h := handler.NewHandler()
	userH := userHandler.NewHandler(authSvc)
	sessionH := sessionHandler.NewHandler(authSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	consultationH := consultationHandler.NewHandler(consultationSvc)
	prescriptionH := prescriptionHandler.NewHandler(prescriptionSvc)
	medicalRecordH := medicalRecordHandler.NewHandler(medicalRecordSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	m := metrics.New("vida_plena")

	r := router.NewRouter(
		authMiddleware,
		userH,
		sessionH,
		patientH,
		doctorH,
		consultationH,
		prescriptionH,
		medicalRecordH,
		h,
		m,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
