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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	Sponsorship     Sponsorship     `mapstructure:",squash"`
	DirectoryCache  DirectoryCache  `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
	ExpirationSweep ExpirationSweep `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type OpenAI struct {
	APIKey    string `mapstructure:"openai_api_key"`
	Model     string `mapstructure:"openai_model"`
	BaseURL   string `mapstructure:"openai_base_url"`
	MaxTokens int    `mapstructure:"openai_max_tokens"`
}

type Sponsorship struct {
	// Datas no formato YYYY-MM-DD em que nenhum slot pode ser reservado
	BlackoutDates     []string      `mapstructure:"sponsorship_blackout_dates"`
	InventoryCacheTTL time.Duration `mapstructure:"sponsorship_inventory_cache_ttl"`
	ScheduleHorizon   int           `mapstructure:"sponsorship_schedule_horizon_days"`
}

type DirectoryCache struct {
	TTL     time.Duration `mapstructure:"directory_cache_ttl"`
	Enabled bool          `mapstructure:"directory_cache_enabled"`
}

type RateLimit struct {
	AIRequestsPerMinute int `mapstructure:"ai_requests_per_minute"`
	AIBurst             int `mapstructure:"ai_burst"`
}

type ExpirationSweep struct {
	CronSchedule string `mapstructure:"expiration_sweep_cron"`
	Enabled      bool   `mapstructure:"expiration_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:9002")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/guialocal?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MAX_TOKENS", 400)

	viper.SetDefault("SPONSORSHIP_BLACKOUT_DATES", "")
	viper.SetDefault("SPONSORSHIP_INVENTORY_CACHE_TTL", "1m")
	viper.SetDefault("SPONSORSHIP_SCHEDULE_HORIZON_DAYS", 30)

	viper.SetDefault("DIRECTORY_CACHE_TTL", "30s")
	viper.SetDefault("DIRECTORY_CACHE_ENABLED", true)

	viper.SetDefault("AI_REQUESTS_PER_MINUTE", 10)
	viper.SetDefault("AI_BURST", 3)

	viper.SetDefault("EXPIRATION_SWEEP_CRON", "5 0 * * *") // Todos os dias às 00:05
	viper.SetDefault("EXPIRATION_SWEEP_ENABLED", true)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
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

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando horário local", config.App.Timezone)
		location = time.Local
	}
	config.App.Location = location

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// BlackoutDays converte as datas bloqueadas configuradas, ignorando as inválidas
func (s Sponsorship) BlackoutDays(loc *time.Location) []time.Time {
	days := make([]time.Time, 0, len(s.BlackoutDates))
	for _, raw := range s.BlackoutDates {
		if raw == "" {
			continue
		}

		day, err := time.ParseInLocation(time.DateOnly, raw, loc)
		if err != nil {
			logrus.Warnf("Data bloqueada inválida ignorada: %s", raw)
			continue
		}
		days = append(days, day)
	}
	return days
}

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
