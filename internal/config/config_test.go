package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`env: dev
http:
  address: ":9090"
database:
  host: db.internal
  port: 3307
  user: app
  password: secret
  name: checkroom
  max_open_conns: 5
  max_idle_conns: 5
  conn_max_lifetime: 30m
jwt:
  secret: unit-test-secret
  ttl: 1h
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg := MustLoadPath(path)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "unit-test-secret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
}

func TestMustLoadPathMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}

func TestAddressDefault(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()
	assert.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "root",
		Name:     "checkroom",
	}
	assert.Equal(t,
		"root:root@tcp(localhost:3306)/checkroom?charset=utf8mb4&parseTime=True&loc=Local",
		d.DSN())
}
