package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/notify"
	"github.com/hearthshare/backend/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load a .env file if one exists, for local development
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	if _, ok := os.LookupEnv("JWT_SECRET"); !ok {
		log.Fatal().Msg("environment variable JWT_SECRET must be set")
	}

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		// Create data directory
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dbPath = filepath.Join(dataDir, "gorm.db")
	}

	// Connect to the database and migrate the schema
	err = models.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Change notifications are optional, the backend works without redis
	if addr, ok := os.LookupEnv("REDIS_ADDR"); ok {
		notify.Connect(addr)
	}

	r, teardown, err := router.Config(baseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
