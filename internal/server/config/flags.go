package config

import (
	"flag"
	"os"

	"github.com/JayatheerthP/OraBank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, seconds
//	-k string   Kafka broker address (e.g., "localhost:9092")
//	-e string   environment ("development" or "production")
//
// os.Args is first filtered to only the flags handled here, avoiding
// collisions with flags defined by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	fs.Int64Var(&config.TokenValiditySeconds, "t", config.TokenValiditySeconds, "token validity (in seconds)")
	fs.StringVar(&config.KafkaBrokerAddr, "k", config.KafkaBrokerAddr, "Kafka broker address")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment (development or production)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
