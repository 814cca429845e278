package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "PresetFiles/TACES06.TXT", cfg.Data.MunicipalityFile)
	require.Equal(t, "PresetFiles/TFIX105.txt", cfg.Data.ValidatorFile)
	require.Equal(t, "latin1", cfg.Data.Encoding)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Equal(t, "mcp-busca-municipio-validador", cfg.Server.Name)
	require.Empty(t, cfg.Server.HTTPAddr)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "munival.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  municipality_file: /data/municipios.txt
  validator_file: /data/validadores.txt
  encoding: utf-8
logging:
  level: debug
server:
  shutdown_timeout: 3s
`), 0o600))

	t.Setenv("MUNIVAL_VALIDATOR_FILE", "/env/validadores.txt")
	t.Setenv("MUNIVAL_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/data/municipios.txt", cfg.Data.MunicipalityFile)
	require.Equal(t, "/env/validadores.txt", cfg.Data.ValidatorFile)
	require.Equal(t, "utf-8", cfg.Data.Encoding)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	opts := cfg.Options()
	require.Equal(t, "/env/validadores.txt", opts.ValidatorFile)
	require.Equal(t, "utf-8", opts.Encoding)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("MUNIVAL_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load("")
	require.ErrorContains(t, err, "invalid duration")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Data: DataConfig{Encoding: "ebcdic"},
		Logging: LoggingConfig{
			Level:  "loud",
			Format: "xml",
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "MUNIVAL_MUNICIPALITY_FILE is required")
	require.ErrorContains(t, err, "MUNIVAL_VALIDATOR_FILE is required")
	require.ErrorContains(t, err, "MUNIVAL_ENCODING")
	require.ErrorContains(t, err, "MUNIVAL_LOG_LEVEL")
	require.ErrorContains(t, err, "MUNIVAL_LOG_FORMAT")
	require.ErrorContains(t, err, "MUNIVAL_SHUTDOWN_TIMEOUT must be positive")
}
