package config

import (
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	ClientSQLite   = "sqlite"
	ClientPostgres = "pg"
)

type ServerConfig struct {
	Env  string // development, test, production
	Port int
}

type DatabaseConfig struct {
	Client string // sqlite or pg
	URL    string
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

const (
	envFile     = ".env"
	envTestFile = ".env.test"
)

// MustLoad reads the process environment and panics on any invalid or
// missing variable; there is no partial startup. A .env file (.env.test when
// ENV=test) is loaded first, best-effort, without overriding variables the
// environment already carries.
func MustLoad() *Config {
	file := envFile
	if os.Getenv("ENV") == EnvTest {
		file = envTestFile
	}
	_ = godotenv.Load(file)

	env := os.Getenv("ENV")
	if env == "" {
		env = EnvProduction
	}
	if env != EnvDevelopment && env != EnvTest && env != EnvProduction {
		panic("ENV must be one of development, test, production, got: " + env)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		panic("DATABASE_URL is required")
	}

	client := os.Getenv("DATABASE_CLIENT")
	if client == "" {
		client = ClientSQLite
	}
	if client != ClientSQLite && client != ClientPostgres {
		panic("DATABASE_CLIENT must be either sqlite or pg, got: " + client)
	}

	port := 3333
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			panic("Invalid PORT format: " + err.Error())
		}
		port = parsed
	}

	return &Config{
		Server: ServerConfig{
			Env:  env,
			Port: port,
		},
		Database: DatabaseConfig{
			Client: client,
			URL:    databaseURL,
		},
	}
}
