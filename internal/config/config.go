package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/catalog"
	"github.com/m04kA/SMC-CourseService/pkg/types"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBHost        = "SMC_DB_HOST"
	EnvDBPort        = "SMC_DB_PORT"
	EnvDBUser        = "SMC_DB_USER"
	EnvDBPassword    = "SMC_DB_PASSWORD"
	EnvRedisAddr     = "SMC_REDIS_ADDR"
	EnvRedisPassword = "SMC_REDIS_PASSWORD"
	EnvHTTPPort      = "SMC_HTTP_PORT"
	EnvLogLevel      = "SMC_LOG_LEVEL"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Capacity CapacityConfig `toml:"capacity"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Calendar CalendarConfig `toml:"calendar"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает строку подключения в формате URL для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
}

type CapacityConfig struct {
	DefaultSeats   int  `toml:"default_seats"`
	AutoInitialize bool `toml:"auto_initialize"`
}

type CatalogConfig struct {
	Slots []SlotConfig `toml:"slots"`
}

// SlotConfig слот каталога; id и hours необязательны
type SlotConfig struct {
	ID    string           `toml:"id"`
	Day   string           `toml:"day"`
	Start types.TimeString `toml:"start"`
	End   types.TimeString `toml:"end"`
	Hours int              `toml:"hours"`
}

type CalendarConfig struct {
	// DisableSkips отключает периоды пропуска, включая декабрь по умолчанию
	DisableSkips bool               `toml:"disable_skips"`
	SkipPeriods  []SkipPeriodConfig `toml:"skip_periods"`
}

// SkipPeriodConfig границы в формате MM-DD (ежегодно) или YYYY-MM-DD
type SkipPeriodConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load загружает конфигурацию из TOML файла
// Перед чтением подгружается .env (если есть), переменные SMC_* перекрывают файл
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "course-service",
		},
		Redis: RedisConfig{
			TTL: 60,
		},
		Capacity: CapacityConfig{
			DefaultSeats: domain.DefaultSeatsPerSlot,
		},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDBHost); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv(EnvDBUser); ok {
		c.Database.User = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisAddr); ok {
		c.Redis.Addr = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logs.Level = v
	}
	if v, ok := os.LookupEnv(EnvDBPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvDBPort, v, err)
		}
		c.Database.Port = port
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации, включая каталог и календарь
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logs.level %q is unknown", c.Logs.Level))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.Capacity.DefaultSeats < domain.MinSeatsPerSlot {
		problems = append(problems, fmt.Sprintf("capacity.default_seats must be at least %d",
			domain.MinSeatsPerSlot))
	}
	if _, err := c.BuildCatalog(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.BuildSkipCalendar(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// BuildCatalog строит каталог слотов; без [[catalog.slots]] используется каталог по умолчанию
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	if len(c.Catalog.Slots) == 0 {
		return catalog.Default(), nil
	}

	defs := make([]catalog.SlotDefinition, 0, len(c.Catalog.Slots))
	for _, s := range c.Catalog.Slots {
		day, err := domain.ParseWeekDay(s.Day)
		if err != nil {
			return nil, fmt.Errorf("catalog slot %q: %w", s.ID, err)
		}
		defs = append(defs, catalog.SlotDefinition{
			ID:    s.ID,
			Day:   day,
			Start: s.Start,
			End:   s.End,
			Hours: s.Hours,
		})
	}
	return catalog.New(defs)
}

// BuildSkipCalendar строит календарь пропусков; без [[calendar.skip_periods]] пропускается декабрь
func (c *Config) BuildSkipCalendar() (domain.SkipCalendar, error) {
	if c.Calendar.DisableSkips {
		return domain.SkipCalendar{}, nil
	}
	if len(c.Calendar.SkipPeriods) == 0 {
		return domain.DefaultSkipCalendar(), nil
	}

	cal := make(domain.SkipCalendar, 0, len(c.Calendar.SkipPeriods))
	for _, p := range c.Calendar.SkipPeriods {
		period, err := domain.NewSkipPeriod(p.From, p.To)
		if err != nil {
			return nil, err
		}
		cal = append(cal, period)
	}
	return cal, nil
}
