package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/aiswo/librarydesk/library"
	"github.com/aiswo/librarydesk/tablestore"
)

// Engine names accepted in LIBRARYDESK_ENGINE.
const (
	EngineFile     = "file"
	EnginePostgres = "postgres"
	EngineS3       = "s3"
)

// Postgres connection flavours accepted in LIBRARYDESK_POSTGRES_DRIVER.
const (
	DriverPGX  = "pgx"
	DriverSQL  = "sql"
	DriverSQLX = "sqlx"
)

const (
	envEngine         = "LIBRARYDESK_ENGINE"
	envDataDir        = "LIBRARYDESK_DATA_DIR"
	envLedgerTable    = "LIBRARYDESK_LEDGER_TABLE"
	envRegistryTable  = "LIBRARYDESK_REGISTRY_TABLE"
	envPostgresDSN    = "LIBRARYDESK_POSTGRES_DSN"
	envPostgresDriver = "LIBRARYDESK_POSTGRES_DRIVER"
	envPostgresTable  = "LIBRARYDESK_POSTGRES_TABLE"
	envS3Bucket       = "LIBRARYDESK_S3_BUCKET"
	envS3Region       = "LIBRARYDESK_S3_REGION"
	envS3Prefix       = "LIBRARYDESK_S3_PREFIX"
	envOTLPEndpoint   = "LIBRARYDESK_OTLP_ENDPOINT"
	envServiceName    = "LIBRARYDESK_SERVICE_NAME"
	envOTelLogger     = "LIBRARYDESK_OTEL_LOGGER"
)

// Contextual logger flavours accepted in LIBRARYDESK_OTEL_LOGGER.
const (
	LoggerSlogBridge = "slog"
	LoggerOTelAPI    = "otel"
)

// StoreSettings holds everything needed to open the storage of both stores.
type StoreSettings struct {
	Engine        string `validate:"required,oneof=file postgres s3"`
	DataDir       string `validate:"required_if=Engine file"`
	LedgerTable   string `validate:"required"`
	RegistryTable string `validate:"required,nefield=LedgerTable"`

	PostgresDSN    string `validate:"required_if=Engine postgres"`
	PostgresDriver string `validate:"omitempty,oneof=pgx sql sqlx"`
	PostgresTable  string `validate:"omitempty,lowercase"`

	S3Bucket string `validate:"required_if=Engine s3"`
	S3Region string `validate:"required_if=Engine s3"`
	S3Prefix string

	OTLPEndpoint string `validate:"omitempty,hostname_port"`
	ServiceName  string `validate:"required"`
	OTelLogger   string `validate:"omitempty,oneof=slog otel"`
}

// DefaultStoreSettings returns the settings used when no variable is set: CSV files in the working directory.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Engine:         EngineFile,
		DataDir:        ".",
		LedgerTable:    library.DefaultLedgerTable,
		RegistryTable:  library.DefaultRegistryTable,
		PostgresDriver: DriverPGX,
		PostgresTable:  "library_tables",
		ServiceName:    "librarydesk",
		OTelLogger:     LoggerSlogBridge,
	}
}

// LoadStoreSettings reads the LIBRARYDESK_* environment variables over the defaults and validates the result.
func LoadStoreSettings() (StoreSettings, error) {
	defaults := DefaultStoreSettings()

	settings := StoreSettings{
		Engine:         getEnv(envEngine, defaults.Engine),
		DataDir:        getEnv(envDataDir, defaults.DataDir),
		LedgerTable:    getEnv(envLedgerTable, defaults.LedgerTable),
		RegistryTable:  getEnv(envRegistryTable, defaults.RegistryTable),
		PostgresDSN:    getEnv(envPostgresDSN, ""),
		PostgresDriver: getEnv(envPostgresDriver, defaults.PostgresDriver),
		PostgresTable:  getEnv(envPostgresTable, defaults.PostgresTable),
		S3Bucket:       getEnv(envS3Bucket, ""),
		S3Region:       getEnv(envS3Region, ""),
		S3Prefix:       getEnv(envS3Prefix, ""),
		OTLPEndpoint:   getEnv(envOTLPEndpoint, ""),
		ServiceName:    getEnv(envServiceName, defaults.ServiceName),
		OTelLogger:     getEnv(envOTelLogger, defaults.OTelLogger),
	}

	if err := settings.Validate(); err != nil {
		return StoreSettings{}, err
	}

	return settings, nil
}

// Validate checks the settings against their struct tags.
func (s StoreSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid store settings: %w", err)
	}

	return nil
}

// StoreConfig builds the library.StoreConfig for the given backend.
func (s StoreSettings) StoreConfig(backend tablestore.Backend) library.StoreConfig {
	return library.StoreConfig{
		Backend:       backend,
		LedgerTable:   s.LedgerTable,
		RegistryTable: s.RegistryTable,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}
