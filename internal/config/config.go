package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingGHLAPIKey é retornado quando GHL_API_KEY não foi informado
var ErrMissingGHLAPIKey = errors.New("GHL_API_KEY não configurado")

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Store           Store           `mapstructure:",squash"`
	GHL             GHL             `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Attribution     Attribution     `mapstructure:",squash"`
	Aggregation     Aggregation     `mapstructure:",squash"`
	AttributionSync AttributionSync `mapstructure:",squash"`
	AdCatalogSync   AdCatalogSync   `mapstructure:",squash"`
}

type App struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
	ReportDir string `mapstructure:"report_dir"`
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

// Store seleciona o backend de documentos
type Store struct {
	Driver                 string `mapstructure:"store_driver"`
	BatchSize              int    `mapstructure:"store_batch_size"`
	FirestoreProjectID     string `mapstructure:"firestore_project_id"`
	ServiceAccountPath     string `mapstructure:"google_application_credentials"`
	MongoURI               string `mapstructure:"mongo_uri"`
	MongoDatabase          string `mapstructure:"mongo_database"`
	MongoMaxPoolSize       uint64 `mapstructure:"mongo_max_pool_size"`
	PostgresDocumentsTable string `mapstructure:"postgres_documents_table"`
}

type GHL struct {
	BaseURL            string        `mapstructure:"ghl_base_url"`
	APIKey             string        `mapstructure:"ghl_api_key"`
	LocationID         string        `mapstructure:"ghl_location_id"`
	Version            string        `mapstructure:"ghl_api_version"`
	PageLimit          int           `mapstructure:"ghl_page_limit"`
	RequestDelay       time.Duration `mapstructure:"ghl_request_delay"`
	Timeout            time.Duration `mapstructure:"ghl_timeout"`
	RetryCount         int           `mapstructure:"ghl_retry_count"`
	RetryWait          time.Duration `mapstructure:"ghl_retry_wait"`
	DetailWorkers      int           `mapstructure:"ghl_detail_workers"`
	EnrichFromContacts bool          `mapstructure:"ghl_enrich_from_contacts"`
	FetchDetails       bool          `mapstructure:"ghl_fetch_details"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	AccessToken    string        `mapstructure:"meta_access_token"`
	AppID          string        `mapstructure:"meta_app_id"`
	AppSecret      string        `mapstructure:"meta_app_secret"`
	LongLivedToken string        `mapstructure:"meta_long_lived_token"`
	AdAccountID    string        `mapstructure:"meta_ad_account_id"`
	RequestDelay   time.Duration `mapstructure:"meta_request_delay"`
	Timeout        time.Duration `mapstructure:"meta_timeout"`
	RetryCount     int           `mapstructure:"meta_retry_count"`
	RetryWait      time.Duration `mapstructure:"meta_retry_wait"`
	TokenExpiresAt time.Time     `mapstructure:"-"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Attribution controla extração e atribuição de anúncios
type Attribution struct {
	ExtractionStrategy string `mapstructure:"attribution_extraction_strategy"`
	Assignment         string `mapstructure:"attribution_assignment"`
	KeepUnknownAdIDs   bool   `mapstructure:"attribution_keep_unknown_ad_ids"`
	ResolveUnknownAds  bool   `mapstructure:"attribution_resolve_unknown_ads"`
}

// Aggregation controla a consolidação semanal
type Aggregation struct {
	WritePolicy      string  `mapstructure:"aggregation_write_policy"`
	DefaultDealValue float64 `mapstructure:"aggregation_default_deal_value"`
	Timezone         string  `mapstructure:"aggregation_timezone"`
}

type AttributionSync struct {
	CronSchedule string `mapstructure:"attribution_sync_cron"`
	LookbackDays int    `mapstructure:"attribution_sync_lookback_days"`
	Enabled      bool   `mapstructure:"attribution_sync_enabled"`
}

type AdCatalogSync struct {
	CronSchedule string `mapstructure:"ad_catalog_sync_cron"`
	LookbackDays int    `mapstructure:"ad_catalog_sync_lookback_days"`
	Enabled      bool   `mapstructure:"ad_catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("REPORT_DIR", ".")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/attribution?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("STORE_DRIVER", "firestore")
	viper.SetDefault("STORE_BATCH_SIZE", 500)
	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "attribution")
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 50)
	viper.SetDefault("POSTGRES_DOCUMENTS_TABLE", "documents")

	viper.SetDefault("GHL_BASE_URL", "https://services.leadconnectorhq.com")
	viper.SetDefault("GHL_API_KEY", "")
	viper.SetDefault("GHL_LOCATION_ID", "")
	viper.SetDefault("GHL_API_VERSION", "2021-07-28")
	viper.SetDefault("GHL_PAGE_LIMIT", 100)
	viper.SetDefault("GHL_REQUEST_DELAY", "500ms")
	viper.SetDefault("GHL_TIMEOUT", "30s")
	viper.SetDefault("GHL_RETRY_COUNT", 3)
	viper.SetDefault("GHL_RETRY_WAIT", "3s")
	viper.SetDefault("GHL_DETAIL_WORKERS", 5)
	viper.SetDefault("GHL_ENRICH_FROM_CONTACTS", false)
	viper.SetDefault("GHL_FETCH_DETAILS", false)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_LONG_LIVED_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_REQUEST_DELAY", "300ms")
	viper.SetDefault("META_TIMEOUT", "30s")
	viper.SetDefault("META_RETRY_COUNT", 3)
	viper.SetDefault("META_RETRY_WAIT", "3s")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("ATTRIBUTION_EXTRACTION_STRATEGY", "last_flagged")
	viper.SetDefault("ATTRIBUTION_ASSIGNMENT", "one")
	viper.SetDefault("ATTRIBUTION_KEEP_UNKNOWN_AD_IDS", false)
	viper.SetDefault("ATTRIBUTION_RESOLVE_UNKNOWN_ADS", false)

	viper.SetDefault("AGGREGATION_WRITE_POLICY", "replace")
	viper.SetDefault("AGGREGATION_DEFAULT_DEAL_VALUE", 1500)
	viper.SetDefault("AGGREGATION_TIMEZONE", "UTC")

	// Sincronização de atribuição: todos os dias às 2h
	viper.SetDefault("ATTRIBUTION_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("ATTRIBUTION_SYNC_LOOKBACK_DAYS", 0)
	viper.SetDefault("ATTRIBUTION_SYNC_ENABLED", false)

	// Catálogo de anúncios: todos os dias às 1h
	viper.SetDefault("AD_CATALOG_SYNC_CRON", "0 1 * * *")
	viper.SetDefault("AD_CATALOG_SYNC_LOOKBACK_DAYS", 30)
	viper.SetDefault("AD_CATALOG_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	config.finalize()

	return config, nil
}

// finalize calcula os campos derivados
func (c *Config) finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)
	if c.Meta.AdAccountID != "" && !strings.HasPrefix(c.Meta.AdAccountID, "act_") {
		c.Meta.AdAccountID = "act_" + c.Meta.AdAccountID
	}

	c.GHL.BaseURL = strings.TrimRight(c.GHL.BaseURL, "/")

	if c.Store.BatchSize <= 0 || c.Store.BatchSize > 500 {
		c.Store.BatchSize = 500
	}

	if c.Database.User != "" {
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	} else {
		c.Database.DSN = fmt.Sprintf("%s://%s", c.Database.Driver, c.Database.URL)
	}
}

// Validate verifica as credenciais obrigatórias antes de qualquer execução
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GHL.APIKey) == "" {
		return ErrMissingGHLAPIKey
	}

	switch c.Store.Driver {
	case "firestore", "mongo", "postgres", "memory":
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q", c.Store.Driver)
	}

	switch c.Aggregation.WritePolicy {
	case "replace", "increment":
	default:
		return fmt.Errorf("AGGREGATION_WRITE_POLICY inválido: %q", c.Aggregation.WritePolicy)
	}

	if _, err := c.Aggregation.Location(); err != nil {
		return fmt.Errorf("AGGREGATION_TIMEZONE inválido: %w", err)
	}

	return nil
}

// Location retorna o fuso usado para calcular semanas
func (a Aggregation) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
