package config

import (
	"encoding/json"
	"os"

	"github.com/JayatheerthP/OraBank/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP     string `json:"endpoint_addr_http"`
	DatabaseDSN          string `json:"database_dsn"`
	SecretKey            string `json:"secret_key"`
	TokenValiditySeconds int64  `json:"token_validity_seconds"`
	KafkaBrokerAddr      string `json:"kafka_broker_addr"`
	Environment          string `json:"environment"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path is taken from the -c or -config flags; when neither
// is set, no file is loaded. An unreadable or invalid file panics, since the
// process cannot start with half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValiditySeconds > 0 {
		config.TokenValiditySeconds = c.TokenValiditySeconds
	}
	if c.KafkaBrokerAddr != "" {
		config.KafkaBrokerAddr = c.KafkaBrokerAddr
	}
	if c.Environment != "" {
		config.Environment = c.Environment
	}
}
