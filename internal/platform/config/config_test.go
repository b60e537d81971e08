package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"API_PORT", "APP_ENV", "STORE_DRIVER", "MONGO_URI", "MONGO_DATABASE",
		"MONGO_CONNECT_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "") // restores the original value after the test
		os.Unsetenv(key)
	}

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "8080", c.APIPort)
	assert.Equal(t, "development", c.AppEnv)
	assert.False(t, c.IsProduction())
	assert.Equal(t, StoreDriverMongo, c.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", c.MongoURI)
	assert.Equal(t, "mydatabase", c.MongoDatabase)
	assert.Equal(t, 10*time.Second, c.MongoConnectTimeout)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, c.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DATABASE", "health")
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")

	c := Load()

	assert.Equal(t, "9090", c.APIPort)
	assert.True(t, c.IsProduction())
	assert.Equal(t, StoreDriverMemory, c.StoreDriver)
	assert.Equal(t, "mongodb://mongo:27017", c.MongoURI)
	assert.Equal(t, "health", c.MongoDatabase)
	assert.Equal(t, 3*time.Second, c.MongoConnectTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSAllowedOrigins)
	assert.Equal(t, time.Duration(0), c.ShutdownTimeout)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}

func TestGetEnvAsList_OnlySeparators(t *testing.T) {
	t.Setenv("SOME_LIST", " , ,")
	assert.Equal(t, []string{"x"}, getEnvAsList("SOME_LIST", []string{"x"}))
}
