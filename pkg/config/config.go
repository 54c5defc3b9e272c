package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Business BusinessConfig
	Storage  StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env   string // development, staging, production
	Name  string
	Today string // YYYY-MM-DD opcional; vacío = fecha del sistema (útil para reportes reproducibles)
}

// BusinessConfig perfil del negocio emisor de los documentos.
type BusinessConfig struct {
	Name            string
	Type            string // retail, services, restaurant, wholesale, manufacturing, other
	Phone           string
	Location        string
	Email           string
	DefaultCurrency string // USD, ZWL
}

// StorageConfig rutas de datos y salida.
type StorageConfig struct {
	DataFile  string // snapshot JSON con perfil, documentos y pagos
	OutputDir string // destino de .txt/.html/.pdf/.csv generados
}

// Now devuelve el "hoy" configurado: APP_TODAY si está definido y es válido,
// si no la hora de pared.
func (c AppConfig) Now() time.Time {
	if c.Today != "" {
		if t, err := time.Parse("2006-01-02", c.Today); err == nil {
			return t
		}
	}
	return time.Now()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BUSINESS_NAME, DATA_FILE, etc.
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

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:   getString(v, "APP_ENV", "development"),
			Name:  getString(v, "APP_NAME", "negocio-pro"),
			Today: getString(v, "APP_TODAY", ""),
		},
		Business: BusinessConfig{
			Name:            getString(v, "BUSINESS_NAME", "Mi Negocio"),
			Type:            getString(v, "BUSINESS_TYPE", "other"),
			Phone:           getString(v, "BUSINESS_PHONE", ""),
			Location:        getString(v, "BUSINESS_LOCATION", ""),
			Email:           getString(v, "BUSINESS_EMAIL", ""),
			DefaultCurrency: getString(v, "DEFAULT_CURRENCY", "USD"),
		},
		Storage: StorageConfig{
			DataFile:  getString(v, "DATA_FILE", "negocio.json"),
			OutputDir: getString(v, "OUTPUT_DIR", "out"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
