package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const testConfigYAML = `
api:
  environment: "test"
  base_url: "localhost:8080"
  port: "8080"
  allowed_cors_domains:
    - "http://localhost:3000"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "from-file"
  db_name: "hjort"

auth:
  signing_key: "from-file"
  issuer: "hjort-api"
  audience: "hjort-admin"

redis:
  addr: "localhost:6379"
  ttl_seconds: 300
`

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, testConfigYAML)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "from-file", conf.Postgres.Password)
	assert.Equal(t, "from-file", conf.Auth.SigningKey)
	assert.Equal(t, "hjort-api", conf.Auth.Issuer)
	assert.Equal(t, "localhost:6379", conf.Redis.Addr)
	assert.Equal(t, 300, conf.Redis.TTLSeconds)
}

func TestLoad_EnvironmentOverridesSecrets(t *testing.T) {
	path := writeConfigFile(t, testConfigYAML)

	t.Setenv("AUTH_SIGNING_KEY", "from-env")
	t.Setenv("POSTGRES_PASSWORD", "also-from-env")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Auth.SigningKey)
	assert.Equal(t, "also-from-env", conf.Postgres.Password)
}

func TestLoad_MissingSigningKey(t *testing.T) {
	path := writeConfigFile(t, `
api:
  port: "8080"
`)
	t.Setenv("AUTH_SIGNING_KEY", "")

	conf, err := Load(path)

	assert.Nil(t, conf)
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestLoad_MissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Nil(t, conf)
	assert.Error(t, err)
}
