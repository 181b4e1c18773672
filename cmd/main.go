package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addVisitHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/add_visit"
	cancelAppointmentHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/complete_appointment"
	confirmAppointmentHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/create_appointment"
	decrementNoShowHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/decrement_no_show"
	generateSlotsHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/generate_slots"
	getAppointmentHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/get_available_slots"
	getCustomerHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/get_customer"
	getCustomerVisitsHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/get_customer_visits"
	getScheduleConfigHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/get_schedule_config"
	listAppointmentsHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/list_appointments"
	markNoShowHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/mark_no_show"
	updateScheduleConfigHandler "github.com/paupet/PG-AppointmentService/internal/api/handlers/update_schedule_config"
	"github.com/paupet/PG-AppointmentService/internal/api/middleware"
	"github.com/paupet/PG-AppointmentService/internal/config"
	appointmentRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/appointment"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
	visitRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/visit"
	appointmentsService "github.com/paupet/PG-AppointmentService/internal/service/appointments"
	customersService "github.com/paupet/PG-AppointmentService/internal/service/customers"
	scheduleService "github.com/paupet/PG-AppointmentService/internal/service/schedule"
	visitsService "github.com/paupet/PG-AppointmentService/internal/service/visits"
	createAppointmentUC "github.com/paupet/PG-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/paupet/PG-AppointmentService/internal/usecase/get_available_slots"
	"github.com/paupet/PG-AppointmentService/pkg/logger"
	"github.com/paupet/PG-AppointmentService/pkg/metrics"
	"github.com/paupet/PG-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PG-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	customerRepository := customerRepo.NewRepository(db)
	visitRepository := visitRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)

	// Менеджер транзакций для атомарных переходов жизненного цикла
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		visitRepository,
		customerRepository,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)
	visitsSvc := visitsService.NewService(visitRepository, customerRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	markNoShow := markNoShowHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(scheduleSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customersSvc, log)
	decrementNoShow := decrementNoShowHandler.NewHandler(customersSvc, log)
	getCustomerVisits := getCustomerVisitsHandler.NewHandler(visitsSvc, log)
	addVisit := addVisitHandler.NewHandler(visitsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность слотов (клиентский портал и админка) ---
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/no-show", markNoShow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Конфигурация расписания ---
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/config", updateScheduleConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// --- Клиенты и история визитов ---
	api.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}/no-shows/decrement", decrementNoShow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/visits", getCustomerVisits.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}/visits", addVisit.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
