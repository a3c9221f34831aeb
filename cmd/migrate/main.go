package main

import (
	"os"

	"github.com/rs/zerolog"

	"CollectKeeper/internal/database"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := database.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("continuing with system environment variables")
	}

	db, err := database.GetConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("migrations completed successfully")
}
