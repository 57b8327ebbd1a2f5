package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type migration struct {
	Name       string
	Statements []string
}

// migrations são idempotentes e aplicadas em ordem, cada uma em sua
// própria transação.
var migrations = []migration{
	{
		Name: "companies",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS companies (
				id          VARCHAR(21) PRIMARY KEY,
				name        TEXT NOT NULL,
				created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
		},
	},
	{
		Name: "users",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id             SERIAL PRIMARY KEY,
				name           TEXT NOT NULL,
				lastname       TEXT NOT NULL DEFAULT '',
				email          TEXT NOT NULL UNIQUE,
				password_hash  TEXT NOT NULL,
				active         BOOLEAN NOT NULL DEFAULT TRUE,
				role_id        INTEGER NOT NULL DEFAULT 3,
				company_id     VARCHAR(21) REFERENCES companies(id) ON DELETE SET NULL,
				deleted        BOOLEAN NOT NULL DEFAULT FALSE,
				deleted_at     TIMESTAMPTZ,
				created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
		},
	},
	{
		Name: "employees",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS employees (
				id                  VARCHAR(21) PRIMARY KEY,
				company_id          VARCHAR(21) NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
				name                TEXT NOT NULL,
				role                TEXT NOT NULL DEFAULT '',
				max_hours_per_week  NUMERIC(5,2) NOT NULL DEFAULT 0,
				active              BOOLEAN NOT NULL DEFAULT TRUE,
				created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_employees_company ON employees (company_id)`,
		},
	},
	{
		Name: "shifts",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS shifts (
				id           VARCHAR(21) PRIMARY KEY,
				employee_id  VARCHAR(21) NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				date         DATE NOT NULL,
				start_time   VARCHAR(5) NOT NULL,
				end_time     VARCHAR(5) NOT NULL,
				notes        TEXT NOT NULL DEFAULT '',
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT shifts_not_empty CHECK (start_time <> end_time)
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_shifts_employee_start ON shifts (employee_id, date, start_time)`,
			`CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts (date)`,
		},
	},
	{
		Name: "daily_sales",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS daily_sales (
				company_id            VARCHAR(21) NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
				date                  DATE NOT NULL,
				estimated_sales       NUMERIC(14,2) NOT NULL DEFAULT 0,
				hourly_employee_cost  NUMERIC(10,2) NOT NULL DEFAULT 0,
				created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (company_id, date)
			)`,
		},
	},
	{
		Name: "locked_weeks",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS locked_weeks (
				company_id       VARCHAR(21) NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
				week_start_date  DATE NOT NULL,
				locked_by        INTEGER REFERENCES users(id) ON DELETE SET NULL,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (company_id, week_start_date),
				CONSTRAINT locked_weeks_monday CHECK (EXTRACT(ISODOW FROM week_start_date) = 1)
			)`,
		},
	},
}

func runMigrations(ctx context.Context, conn *postgres.Connection) error {
	for _, m := range migrations {
		startTime := time.Now()

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.Statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logrus.WithError(err).Errorf("ERRO ao aplicar migração %s", m.Name)
			return err
		}

		logrus.Infof("Migração %s aplicada em %v", m.Name, time.Since(startTime))
	}
	return nil
}

// seedAdmin cria a empresa e o administrador iniciais quando SEED_ADMIN_EMAIL
// e SEED_ADMIN_PASSWORD estão definidos. Não faz nada se o email já existir.
func seedAdmin(ctx context.Context, conn *postgres.Connection) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD ausentes, seed ignorado")
		return nil
	}

	var exists bool
	if err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		logrus.Infof("Administrador %s já existe", email)
		return nil
	}

	companyName := os.Getenv("SEED_COMPANY_NAME")
	if companyName == "" {
		companyName = "Loja Matriz"
	}

	companyID, err := utils.GenerateID()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO companies (id, name) VALUES ($1, $2)`, companyID, companyName); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash, role_id, company_id) VALUES ($1, $2, $3, $4, $5)`,
			"Administrador", email, string(hash), domain.RoleAdmin, companyID,
		)
		return err
	})
	if err != nil {
		return err
	}

	logrus.Infof("Empresa %s (%s) e administrador %s criados", companyName, companyID, email)
	return nil
}

func main() {
	log.Configure("info")
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := runMigrations(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	if err := seedAdmin(ctx, conn); err != nil {
		logrus.Fatalf("ERRO ao criar administrador inicial: %v", err)
	}

	logrus.Info("Migração concluída")
}
