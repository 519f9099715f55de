package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey  = "API_PORT"
	dbConnEnvKey   = "DB_CONNECTION_URL"
	logLevelEnvKey = "LOG_LEVEL"
)

type App struct {
	Port            string
	DBConnectionURL string
	LogLevel        string
}

func NewApp() (App, error) {
	// a missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	logLevel, ok := os.LookupEnv(logLevelEnvKey)
	if !ok {
		logLevel = "info"
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		LogLevel:        logLevel,
	}, nil
}
