package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/api/handler"
	"github.com/vfg2006/shift-scheduler-api/internal/api/handler/router"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/scheduler"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/exporting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/forecasting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/locking"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API.
type Services struct {
	Authenticator authenticating.Authenticator
	Staff         staffing.StaffService
	Shifter       shifting.Shifter
	Forecaster    forecasting.Forecaster
	Locker        locking.WeekLocker
	Exporter      exporting.Exporter
	WeekLock      *scheduler.WeekLockService
	SalesImport   *scheduler.SalesImportService
	DB            handler.Pinger
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		WeekLockService:    services.WeekLock,
		SalesImportService: services.SalesImport,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Companies(services.Staff)...),
		router.WithRoutes(handler.Employees(services.Staff)...),
		router.WithRoutes(handler.Shifts(services.Shifter, services.Staff)...),
		router.WithRoutes(handler.DailySales(services.Forecaster)...),
		router.WithRoutes(handler.LockedWeeks(services.Locker)...),
		router.WithRoutes(handler.Exports(services.Exporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
