// Package config holds the runtime options of the catalog and the file/env
// configuration of the command-line tool.
//
// Configuration is resolved in layers: struct-tag defaults, then an optional
// YAML file, then MUNIVAL_* environment variables. Command-line flags are
// applied last by the caller. Validate fails fast on bad values.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// DataConfig locates the source tables.
type DataConfig struct {
	// MunicipalityFile is the municipality table (default: PresetFiles/TACES06.TXT)
	MunicipalityFile string `yaml:"municipality_file" env:"MUNIVAL_MUNICIPALITY_FILE" default:"PresetFiles/TACES06.TXT"`

	// ValidatorFile is the validator table (default: PresetFiles/TFIX105.txt)
	ValidatorFile string `yaml:"validator_file" env:"MUNIVAL_VALIDATOR_FILE" default:"PresetFiles/TFIX105.txt"`

	// Encoding of both tables: latin1 or utf-8 (default: latin1)
	Encoding string `yaml:"encoding" env:"MUNIVAL_ENCODING" default:"latin1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `yaml:"level" env:"MUNIVAL_LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"MUNIVAL_LOG_FORMAT" default:"text"`
}

// ServerConfig holds tool-server settings.
type ServerConfig struct {
	// Name is the MCP implementation name (default: mcp-busca-municipio-validador)
	Name string `yaml:"name" env:"MUNIVAL_SERVER_NAME" default:"mcp-busca-municipio-validador"`

	// HTTPAddr serves MCP over streamable HTTP when set; stdio otherwise.
	HTTPAddr string `yaml:"http_addr" env:"MUNIVAL_HTTP_ADDR"`

	// ShutdownTimeout bounds graceful HTTP shutdown (default: 10s)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"MUNIVAL_SHUTDOWN_TIMEOUT" default:"10s"`
}

// Options converts the data section into catalog Options.
func (c *Config) Options() Options {
	return Options{
		MunicipalityFile: c.Data.MunicipalityFile,
		ValidatorFile:    c.Data.ValidatorFile,
		Encoding:         c.Data.Encoding,
	}
}
