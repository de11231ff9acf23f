package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Sandbox SandboxConfig
}

// AppConfig configuración general de la consola.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig ubicación y tiempos del backend REST del taller.
type APIConfig struct {
	BaseURL        string // ej. https://api.autofix.example/api
	TimeoutSeconds int
}

// Timeout devuelve el timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig ubicación del archivo de sesión (tokens y datos de UI cacheados).
type SessionConfig struct {
	Path string
}

// SandboxConfig configuración del backend local de pruebas.
type SandboxConfig struct {
	Host      string
	Port      int
	JWTSecret string
	Issuer    string
	ExpMin    int // minutos de vida del access token
}

// Addr devuelve la dirección de escucha del sandbox (host:port).
func (c SandboxConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "autofix-consola"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8000/api"), "/"),
			TimeoutSeconds: getInt(v, "HTTP_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			Path: getString(v, "SESSION_PATH", defaultSessionPath()),
		},
		Sandbox: SandboxConfig{
			Host:      getString(v, "SANDBOX_HOST", "127.0.0.1"),
			Port:      getInt(v, "SANDBOX_PORT", 8000),
			JWTSecret: getString(v, "SANDBOX_JWT_SECRET", "sandbox-secret"),
			Issuer:    getString(v, "SANDBOX_JWT_ISSUER", "autofix-sandbox"),
			ExpMin:    getInt(v, "SANDBOX_JWT_EXP_MINUTES", 60),
		},
	}

	return cfg, nil
}

// defaultSessionPath ubica la sesión junto a la configuración del usuario
// (~/.config/autofix/sesion.json), con fallback al directorio actual.
func defaultSessionPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "sesion.json"
	}
	return filepath.Join(base, "autofix", "sesion.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
