package cfg

import (
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CATALOG_BACKEND", "APP_ENV", "ADMIN_EMAIL", "ADMIN_PASSWORD",
	"BOLT_PATH", "BOLT_TIMEOUT",
	"HTTP_PORT", "CORS_ALLOWED_ORIGINS", "SWAGGER_URL",
	"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"REDIS_ADDR", "PRODUCT_TTL",
	"STORAGE_DRIVER", "CLOUDINARY_URL", "MAX_UPLOAD_SIZE", "STORAGE_PUBLIC_URL",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"JWT_SECRET", "JWT_TTL", "BCRYPT_COST",
}

// clearEnv обнуляет переменные, которые могли прийти из окружения разработчика.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_BoltDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_BACKEND", "bolt")

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, cfg.App.Backend)
	assert.Nil(t, cfg.Db)
	assert.Equal(t, "data/catalog.db", cfg.Bolt.Path)
	assert.Equal(t, time.Second, cfg.Bolt.Timeout)

	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Http.AllowedOrigins)
	assert.Equal(t, "http://localhost:8080/swagger/doc.json", cfg.Http.SwaggerURL)

	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)

	assert.Equal(t, StorageMinio, cfg.Storage.Driver)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadSize)

	assert.Equal(t, "bsb-catalog", cfg.Auth.Issuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_PostgresRequiresCredentials(t *testing.T) {
	clearEnv(t)

	_, err := Load(logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")

	t.Setenv("POSTGRES_USER", "catalog")
	t.Setenv("POSTGRES_PASSWORD", "catalog")
	t.Setenv("POSTGRES_DB", "catalog")

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.App.Backend)
	assert.Equal(t, "localhost", cfg.Db.Host)
	assert.Equal(t, "disable", cfg.Db.SSLMode)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown backend",
			env:  map[string]string{"CATALOG_BACKEND": "sqlite"},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, e.ErrUnknownBackend))
			},
		},
		{
			name: "missing jwt secret",
			env:  map[string]string{"CATALOG_BACKEND": "bolt", "JWT_SECRET": ""},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "JWT_SECRET")
			},
		},
		{
			name: "cloudinary without url",
			env:  map[string]string{"CATALOG_BACKEND": "bolt", "STORAGE_DRIVER": "cloudinary"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "CLOUDINARY_URL")
			},
		},
		{
			name: "bad bcrypt cost",
			env:  map[string]string{"CATALOG_BACKEND": "bolt", "BCRYPT_COST": "many"},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, e.ErrIncorrectEnvVariable))
			},
		},
		{
			name: "bad duration",
			env:  map[string]string{"CATALOG_BACKEND": "bolt", "JWT_TTL": "soon"},
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(logger.NewNop())
			require.Error(t, err)
			assert.Nil(t, cfg)
			tt.check(t, err)
		})
	}
}

func TestLoad_OptionalServices(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_BACKEND", "bolt")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("PRODUCT_TTL", "30s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("STORAGE_PUBLIC_URL", "https://cdn.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.ProductTTL)

	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "catalog-events", cfg.Kafka.Topic)

	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Http.AllowedOrigins)
}
