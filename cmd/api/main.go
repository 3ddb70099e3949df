package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/vitacare/clinicapi/internal/config"
	v1 "github.com/vitacare/clinicapi/internal/handler/v1"
	"github.com/vitacare/clinicapi/internal/middleware"
	"github.com/vitacare/clinicapi/internal/repository"
	"github.com/vitacare/clinicapi/internal/service"
	"github.com/vitacare/clinicapi/pkg/clock"
	"github.com/vitacare/clinicapi/pkg/database"
	"github.com/vitacare/clinicapi/pkg/logger"
	"github.com/vitacare/clinicapi/pkg/metrics"
	"github.com/vitacare/clinicapi/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("loading configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("initializing logger: " + err.Error())
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting service",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if err := run(cfg, log); err != nil {
		log.Fatal("service exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, log); err != nil {
		return err
	}

	// Prometheus metric names forbid dashes; app names like "clinic-api"
	// must be folded to a legal namespace.
	collector := metrics.NewCollector(strings.ReplaceAll(cfg.App.Name, "-", "_"))

	clk := clock.NewFixedOffset(cfg.Clinic.UTCOffsetHours)

	transactor := repository.NewTransactor(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)

	departmentSvc := service.NewDepartmentService(departmentRepo, log)
	doctorSvc := service.NewDoctorService(transactor, doctorRepo, scheduleRepo, departmentRepo, cfg.Clinic, log)
	patientSvc := service.NewPatientService(transactor, patientRepo, appointmentRepo, doctorRepo, collector, log)
	slotSvc := service.NewSlotService(doctorRepo, scheduleRepo, appointmentRepo, clk, collector, log)
	appointmentSvc := service.NewAppointmentService(transactor, appointmentRepo, patientRepo, doctorRepo, scheduleRepo, clk, collector, log)
	visitSvc := service.NewVisitService(transactor, appointmentRepo, recordRepo, prescriptionRepo, medicationRepo, collector, log)
	medicationSvc := service.NewMedicationService(medicationRepo, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	r.Use(middleware.Metrics(collector))
	r.Use(middleware.RateLimit(cfg.RateLimit))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		collector.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	v1.Register(r,
		v1.NewDepartmentHandler(departmentSvc),
		v1.NewDoctorHandler(doctorSvc, slotSvc, appointmentSvc),
		v1.NewPatientHandler(patientSvc),
		v1.NewAppointmentHandler(appointmentSvc, visitSvc, clk),
		v1.NewMedicationHandler(medicationSvc),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
