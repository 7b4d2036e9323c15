package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends soportados por el Catalog Store.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Log      LogConfig
	DB       DBConfig
	HTTP     HTTPConfig
	Catalog  CatalogConfig
	WhatsApp WhatsAppConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// CatalogConfig ubicación y reglas del catálogo.
type CatalogConfig struct {
	Backend           string // file | postgres
	DataDir           string
	ProductsDir       string
	CategoriesDir     string
	PriceMin          float64
	PriceMax          float64
	RecentlyViewedMax int
}

// WhatsAppConfig canal de contacto saliente.
type WhatsAppConfig struct {
	Phone string // solo dígitos, con código de país
}

// DBConfig configuración de PostgreSQL (solo con CATALOG_BACKEND=postgres o sink postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json servido en /docs si existe
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, CATALOG_DATA_DIR, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	dataDir := getString(v, "CATALOG_DATA_DIR", filepath.Join("src", "data"))
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "printshop-catalog"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "printshop_catalog"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Catalog: CatalogConfig{
			Backend:           strings.ToLower(getString(v, "CATALOG_BACKEND", BackendFile)),
			DataDir:           dataDir,
			ProductsDir:       getString(v, "CATALOG_PRODUCTS_DIR", filepath.Join(dataDir, "products")),
			CategoriesDir:     getString(v, "CATALOG_CATEGORIES_DIR", filepath.Join(dataDir, "categories")),
			PriceMin:          getFloat(v, "CATALOG_PRICE_MIN", 0),
			PriceMax:          getFloat(v, "CATALOG_PRICE_MAX", 2000),
			RecentlyViewedMax: getInt(v, "RECENTLY_VIEWED_MAX", 8),
		},
		WhatsApp: WhatsAppConfig{
			Phone: getString(v, "WHATSAPP_PHONE", "919999999999"),
		},
	}

	if cfg.Catalog.Backend != BackendFile && cfg.Catalog.Backend != BackendPostgres {
		return nil, fmt.Errorf("CATALOG_BACKEND inválido: %q", cfg.Catalog.Backend)
	}
	if cfg.Catalog.PriceMin > cfg.Catalog.PriceMax {
		return nil, fmt.Errorf("CATALOG_PRICE_MIN (%v) mayor que CATALOG_PRICE_MAX (%v)", cfg.Catalog.PriceMin, cfg.Catalog.PriceMax)
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}
