// Package config manages application configuration for the todos API.
//
// # Configuration Loading
//
// Load builds a Config in layers, each overriding the one before:
//
//  1. built-in defaults (sqlite at ./todos.db, port 8080)
//  2. a TOML file, CONFIG_FILE or ./todos.toml when present
//  3. environment variables, after loading ./.env if it exists
//
// Validate reports every problem at once via errors.Join.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	SERVER_PORT            HTTP port (default: 8080)
//	SERVER_ENV             development | production | test
//	SERVER_READ_TIMEOUT    e.g. 15s
//	SERVER_WRITE_TIMEOUT   e.g. 15s
//	SERVER_MAX_BODY_BYTES  request body limit (default: 1 MiB)
//	CORS_ALLOWED_ORIGINS   comma separated, * allows any
//	DB_DRIVER              sqlite | surrealdb
//	DB_PATH                sqlite file, or :memory:
//	DB_HOST, DB_PORT       surrealdb address
//	DB_NAMESPACE           surrealdb namespace
//	DB_DATABASE            surrealdb database
//	DB_USER, DB_PASSWORD   surrealdb credentials
//	LOG_LEVEL              debug | info | warn | error
//	LOG_FORMAT             json | text
//	SEED_FILE              JSON array of todos imported at startup
//
// # TOML File
//
//	seed_file = "seed.json"
//
//	[server]
//	port = "8080"
//	read_timeout = "15s"
//
//	[database]
//	driver = "surrealdb"
//	host = "localhost"
//	port = "8000"
package config
