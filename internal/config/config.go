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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	LocalDateSync    LocalDateSync    `mapstructure:",squash"`
	IdentityBackfill IdentityBackfill `mapstructure:",squash"`
	Attribution      Attribution      `mapstructure:",squash"`
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

	MaxOpenConns           int `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int `mapstructure:"database_conn_max_lifetime_minutes"`
}

func (d Database) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeMinutes) * time.Minute
}

type Redis struct {
	URL                     string `mapstructure:"redis_url"`
	FilterOptionsTTLSeconds int    `mapstructure:"redis_filter_options_ttl_seconds"`
}

// FilterOptionsTTL retorna o TTL do cache de opções de filtro
func (r Redis) FilterOptionsTTL() time.Duration {
	return time.Duration(r.FilterOptionsTTLSeconds) * time.Second
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type LocalDateSync struct {
	CronSchedule      string `mapstructure:"local_date_sync_cron"`
	BatchSize         int    `mapstructure:"local_date_sync_batch_size"`
	MaxConcurrentJobs int    `mapstructure:"local_date_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"local_date_sync_enabled"`
}

type IdentityBackfill struct {
	CronSchedule      string `mapstructure:"identity_backfill_cron"`
	BatchSize         int    `mapstructure:"identity_backfill_batch_size"`
	MaxConcurrentJobs int    `mapstructure:"identity_backfill_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"identity_backfill_enabled"`
}

type Attribution struct {
	SessionTTLHours     int    `mapstructure:"attribution_session_ttl_hours"`
	UTMWindowHours      int    `mapstructure:"attribution_utm_window_hours"`
	FilterOptionsLimit  int    `mapstructure:"attribution_filter_options_limit"`
	CleanupCronSchedule string `mapstructure:"attribution_cleanup_cron"`
	CleanupBatchSize    int    `mapstructure:"attribution_cleanup_batch_size"`
	CleanupEnabled      bool   `mapstructure:"attribution_cleanup_enabled"`
}

func (a Attribution) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLHours) * time.Hour
}

func (a Attribution) UTMWindow() time.Duration {
	return time.Duration(a.UTMWindowHours) * time.Hour
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("REDIS_URL", "")                        // vazio desabilita o cache
	viper.SetDefault("REDIS_FILTER_OPTIONS_TTL_SECONDS", 300) // 5 minutos

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("LOCAL_DATE_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("LOCAL_DATE_SYNC_BATCH_SIZE", 500)
	viper.SetDefault("LOCAL_DATE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("LOCAL_DATE_SYNC_ENABLED", false)

	viper.SetDefault("IDENTITY_BACKFILL_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("IDENTITY_BACKFILL_BATCH_SIZE", 200)
	viper.SetDefault("IDENTITY_BACKFILL_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("IDENTITY_BACKFILL_ENABLED", false)

	viper.SetDefault("ATTRIBUTION_SESSION_TTL_HOURS", 720) // 30 dias desde a última atividade
	viper.SetDefault("ATTRIBUTION_UTM_WINDOW_HOURS", 168)  // ±7 dias em torno da criação do contato
	viper.SetDefault("ATTRIBUTION_FILTER_OPTIONS_LIMIT", 200)
	viper.SetDefault("ATTRIBUTION_CLEANUP_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("ATTRIBUTION_CLEANUP_BATCH_SIZE", 1000)
	viper.SetDefault("ATTRIBUTION_CLEANUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
