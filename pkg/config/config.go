package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Orders  OrdersConfig
	Menu    MenuConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig cookie y firma de los tokens de sesión.
type SessionConfig struct {
	CookieName string
	Secret     string // vacío = secreto aleatorio por proceso
	Issuer     string
	TTLMinutes int // 0 = el token no expira; la sesión vive hasta el logout
}

// OrdersConfig reglas del motor de pedidos.
type OrdersConfig struct {
	// EnforceTransitions aplica la tabla de transiciones también a los cambios de estado del admin.
	EnforceTransitions bool
}

// MenuConfig datos iniciales del catálogo.
type MenuConfig struct {
	Seed bool
}

// SwaggerConfig UI de documentación en /docs.
type SwaggerConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "food-order-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE", "sid"),
			Secret:     getString(v, "SESSION_SECRET", ""),
			Issuer:     getString(v, "SESSION_ISSUER", "food-order-api"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 0),
		},
		Orders: OrdersConfig{
			EnforceTransitions: getBool(v, "ORDERS_ENFORCE_TRANSITIONS", false),
		},
		Menu: MenuConfig{
			Seed: getBool(v, "MENU_SEED", true),
		},
		Swagger: SwaggerConfig{
			Enabled:  getBool(v, "SWAGGER_ENABLED", false),
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Session.TTLMinutes < 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES no puede ser negativo")
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "sid"
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
