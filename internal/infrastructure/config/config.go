package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de armazenamento suportados
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Erros de validação da configuração
var (
	ErrMissingJWTSecret     = errors.New("JWT_SECRET_KEY não configurada")
	ErrInvalidStorageDriver = errors.New("STORAGE_DRIVER inválido")
)

// Config agrupa todas as configurações da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	Port            int
	BasePath        string
	Mode            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig contém as configurações para conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
	MigrateOnStart  bool
}

// JWTConfig contém as configurações dos tokens de acesso
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level  string
	Format string
}

// StorageConfig define qual implementação de repositório usar
type StorageConfig struct {
	Driver string
}

// CORSConfig contém as origens permitidas
type CORSConfig struct {
	AllowedOrigins []string
}

// ConnectionString retorna a URL de conexão para o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Load carrega o .env (se existir) e lê as configurações das variáveis de ambiente
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			BasePath:        v.GetString("SERVER_BASE_PATH"),
			Mode:            v.GetString("GIN_MODE"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			MaxConnections:  v.GetInt32("DB_MAX_CONNECTIONS"),
			MinConnections:  v.GetInt32("DB_MIN_CONNECTIONS"),
			MaxConnLifetime: time.Duration(v.GetInt("DB_MAX_LIFETIME")) * time.Second,
			MigrateOnStart:  v.GetBool("MIGRATE_ON_START"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET_KEY"),
			Expiration: time.Duration(v.GetInt("JWT_EXPIRATION_HOURS")) * time.Hour,
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifica se a configuração é utilizável
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorageDriver, c.Storage.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_BASE_PATH", "/api")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "voice_productivity")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNECTIONS", 10)
	v.SetDefault("DB_MIN_CONNECTIONS", 2)
	v.SetDefault("DB_MAX_LIFETIME", 300)
	v.SetDefault("MIGRATE_ON_START", false)

	// 7 dias, como o token emitido pela versão web
	v.SetDefault("JWT_EXPIRATION_HOURS", 168)
	v.SetDefault("JWT_ISSUER", "voice-productivity-api")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
