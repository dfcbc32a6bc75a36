package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiswo/librarydesk/library"
	"github.com/aiswo/librarydesk/library/shared/shell/config"
	"github.com/aiswo/librarydesk/testutil/testdoubles"
)

func Test_LoadStoreSettings_Defaults(t *testing.T) {
	// arrange
	t.Setenv("LIBRARYDESK_ENGINE", "")
	t.Setenv("LIBRARYDESK_LEDGER_TABLE", "")

	// act
	settings, err := config.LoadStoreSettings()

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStoreSettings(), settings)
	assert.Equal(t, library.DefaultLedgerTable, settings.LedgerTable)
}

func Test_LoadStoreSettings_FromEnvironment(t *testing.T) {
	// arrange
	t.Setenv("LIBRARYDESK_ENGINE", "s3")
	t.Setenv("LIBRARYDESK_S3_BUCKET", "library-bucket")
	t.Setenv("LIBRARYDESK_S3_REGION", "eu-central-1")
	t.Setenv("LIBRARYDESK_S3_PREFIX", "branch-7")
	t.Setenv("LIBRARYDESK_REGISTRY_TABLE", "members")

	// act
	settings, err := config.LoadStoreSettings()

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.EngineS3, settings.Engine)
	assert.Equal(t, "library-bucket", settings.S3Bucket)
	assert.Equal(t, "branch-7", settings.S3Prefix)
	assert.Equal(t, "members", settings.RegistryTable)
}

func Test_StoreSettings_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(s *config.StoreSettings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(_ *config.StoreSettings) {}},
		{name: "unknown engine", mutate: func(s *config.StoreSettings) { s.Engine = "mongo" }, wantErr: true},
		{name: "postgres without dsn", mutate: func(s *config.StoreSettings) { s.Engine = config.EnginePostgres }, wantErr: true},
		{
			name: "postgres with dsn",
			mutate: func(s *config.StoreSettings) {
				s.Engine = config.EnginePostgres
				s.PostgresDSN = "postgres://localhost/library"
			},
		},
		{name: "unknown driver", mutate: func(s *config.StoreSettings) { s.PostgresDriver = "odbc" }, wantErr: true},
		{name: "s3 without bucket", mutate: func(s *config.StoreSettings) { s.Engine = config.EngineS3 }, wantErr: true},
		{name: "same table twice", mutate: func(s *config.StoreSettings) { s.RegistryTable = s.LedgerTable }, wantErr: true},
		{name: "bad otlp endpoint", mutate: func(s *config.StoreSettings) { s.OTLPEndpoint = "not an endpoint" }, wantErr: true},
		{name: "otlp endpoint", mutate: func(s *config.StoreSettings) { s.OTLPEndpoint = "localhost:4317" }},
		{name: "otel log api", mutate: func(s *config.StoreSettings) { s.OTelLogger = config.LoggerOTelAPI }},
		{name: "unknown logger", mutate: func(s *config.StoreSettings) { s.OTelLogger = "zap" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			settings := config.DefaultStoreSettings()
			tc.mutate(&settings)

			// act
			err := settings.Validate()

			// assert
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_StoreSettings_StoreConfig(t *testing.T) {
	// arrange
	settings := config.DefaultStoreSettings()
	settings.LedgerTable = "branch_ledger"
	backend := testdoubles.NewMemoryBackend()

	// act
	storeConfig := settings.StoreConfig(backend)

	// assert
	assert.Same(t, backend, storeConfig.Backend)
	assert.Equal(t, "branch_ledger", storeConfig.LedgerTable)
	assert.Equal(t, library.DefaultRegistryTable, storeConfig.RegistryTable)
}
