package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Grid        Grid        `mapstructure:",squash"`
	Shifts      Shifts      `mapstructure:",squash"`
	WeekLock    WeekLock    `mapstructure:",squash"`
	POS         POS         `mapstructure:",squash"`
	SalesImport SalesImport `mapstructure:",squash"`
	Client      Client      `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Grid define a janela de horas exibida na grade de escala.
type Grid struct {
	StartHour int `mapstructure:"grid_start_hour"`
	EndHour   int `mapstructure:"grid_end_hour"`
}

type Shifts struct {
	BulkCreateMaxConcurrency int `mapstructure:"bulk_create_max_concurrency"`
}

type WeekLock struct {
	CronSchedule string `mapstructure:"week_lock_cron"`
	Enabled      bool   `mapstructure:"week_lock_enabled"`
	AfterDays    int    `mapstructure:"week_lock_after_days"`
}

// POS configura a API de vendas do ponto de venda.
type POS struct {
	URL         string        `mapstructure:"pos_url"`
	AccessToken string        `mapstructure:"pos_access_token"`
	Timeout     time.Duration `mapstructure:"pos_timeout"`
}

// SalesImport preenche as vendas estimadas da próxima semana a partir das
// vendas do PDV.
type SalesImport struct {
	CronSchedule string `mapstructure:"sales_import_cron"`
	Enabled      bool   `mapstructure:"sales_import_enabled"`
}

// Client configura o cliente REST usado pelo schedulectl.
type Client struct {
	BaseURL string        `mapstructure:"client_base_url"`
	Token   string        `mapstructure:"client_token"`
	Timeout time.Duration `mapstructure:"client_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shifts?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("GRID_START_HOUR", 6)
	viper.SetDefault("GRID_END_HOUR", 24)

	viper.SetDefault("BULK_CREATE_MAX_CONCURRENCY", 4)

	viper.SetDefault("WEEK_LOCK_CRON", "0 2 * * 1") // Segundas às 2h da manhã
	viper.SetDefault("WEEK_LOCK_ENABLED", false)
	viper.SetDefault("WEEK_LOCK_AFTER_DAYS", 7) // Semanas encerradas há mais de 7 dias

	viper.SetDefault("POS_URL", "")
	viper.SetDefault("POS_ACCESS_TOKEN", "")
	viper.SetDefault("POS_TIMEOUT", "45s")

	viper.SetDefault("SALES_IMPORT_CRON", "0 3 * * 0") // Domingos às 3h da manhã
	viper.SetDefault("SALES_IMPORT_ENABLED", false)

	viper.SetDefault("CLIENT_BASE_URL", "http://localhost:8000")
	viper.SetDefault("CLIENT_TOKEN", "")
	viper.SetDefault("CLIENT_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Shifts.BulkCreateMaxConcurrency <= 0 {
		config.Shifts.BulkCreateMaxConcurrency = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
