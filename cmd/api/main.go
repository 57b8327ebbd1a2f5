package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/api"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/scheduler"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/exporting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/forecasting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/locking"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	// valores monetários como números no JSON
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	shiftRepo := repository.NewShiftRepository(pgConn)
	salesRepo := repository.NewDailySalesRepository(pgConn)
	lockRepo := repository.NewLockedWeekRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, companyRepo, cfg)
	staffService := staffing.NewService(companyRepo, employeeRepo, shiftRepo)
	shiftService := shifting.NewService(shiftRepo, employeeRepo, lockRepo, cfg)
	forecastService := forecasting.NewService(salesRepo, shiftRepo)
	lockService := locking.NewService(lockRepo)
	exportService := exporting.NewService(employeeRepo, shiftRepo)

	weekLockService := scheduler.NewWeekLockService(companyRepo, lockRepo, cfg)
	if err := weekLockService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de bloqueio de semanas")
	} else {
		logrus.Info("Agendador de bloqueio de semanas iniciado com sucesso")
	}

	posService := pos.New(posclient.NewClient(cfg.POS))
	salesImportService := scheduler.NewSalesImportService(companyRepo, salesRepo, posService, cfg)
	if err := salesImportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação de vendas")
	} else {
		logrus.Info("Agendador de importação de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Staff:         staffService,
		Shifter:       shiftService,
		Forecaster:    forecastService,
		Locker:        lockService,
		Exporter:      exportService,
		WeekLock:      weekLockService,
		SalesImport:   salesImportService,
		DB:            pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger usa o diretório do binário como base para o .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	log.Configure("info")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
