package config

import (
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "HOST", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_SCHEMA", "DB_TABLE",
		"DB_MIN_CONNS", "DB_MAX_CONNS", "DB_CONNECT_TIMEOUT", "DB_FAIL_FAST", "DB_AUTO_MIGRATE",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, k := range keys {
		for _, name := range []string{k, envPrefix + "_" + k} {
			if v, ok := os.LookupEnv(name); ok {
				os.Unsetenv(name)
				t.Cleanup(func() { os.Setenv(name, v) })
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	db := cfg.Database
	assert.Equal(t, "postgres", db.User)
	assert.Equal(t, "", db.Password)
	assert.Equal(t, "vertigo_clan_dev", db.Name)
	assert.Equal(t, "127.0.0.1", db.Host)
	assert.Equal(t, 5432, db.Port)
	assert.Equal(t, "clan_schema", db.Schema)
	assert.Equal(t, "clans", db.Table)
	assert.Equal(t, 1, db.MinConns)
	assert.Equal(t, 5, db.MaxConns)
	assert.Equal(t, 10*time.Second, db.ConnectTimeout)
	assert.False(t, db.FailFast)
	assert.True(t, db.AutoMigrate)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_USER", "clanner")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("DB_SCHEMA", "games")
	t.Setenv("DB_MIN_CONNS", "2")
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("APP_DB_TABLE", "guilds")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "clanner", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "games", cfg.Database.Schema)
	assert.Equal(t, "guilds", cfg.Database.Table)
	assert.Equal(t, 2, cfg.Database.MinConns)
	assert.Equal(t, 20, cfg.Database.MaxConns)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadRejectsNonNumeric(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSNForTCPHost(t *testing.T) {
	c := DatabaseConfig{Host: "db.internal", Port: 6543, User: "u", Password: "p@ss word", Name: "clans"}

	assert.False(t, c.IsSocket())
	assert.Equal(t, "prefer", c.SSLMode())

	u, err := url.Parse(c.DSN())
	require.NoError(t, err)
	assert.Equal(t, "db.internal:6543", u.Host)
	assert.Equal(t, "/clans", u.Path)
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pass)
	assert.Equal(t, "prefer", u.Query().Get("sslmode"))
	assert.Empty(t, u.Query().Get("host"))
}

func TestDSNForSocketHost(t *testing.T) {
	c := DatabaseConfig{Host: "/cloudsql/proj:eu:db", Port: 5432, User: "u", Name: "clans"}

	assert.True(t, c.IsSocket())
	assert.Equal(t, "disable", c.SSLMode())

	u, err := url.Parse(c.DSN())
	require.NoError(t, err)
	assert.Empty(t, u.Host, "port is omitted for sockets")
	assert.Equal(t, "/cloudsql/proj:eu:db", u.Query().Get("host"))
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}
