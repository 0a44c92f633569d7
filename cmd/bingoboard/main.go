package main

import (
	"os"

	"github.com/bingoboard-dev/bingoboard/db"
	"github.com/bingoboard-dev/bingoboard/internal/auth"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/router"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	loadErr := godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	if loadErr != nil {
		// Not fatal: production deployments configure the environment
		// directly.
		logger.Get().Info().Msg(".env file not found, using process environment")
	}

	tokens, err := auth.NewTokenManager(os.Getenv("JWT_SECRET"))

	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to initialize token manager")
	}

	gdb, err := db.Connect(os.Getenv("DATABASE_URL"))

	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(gdb); err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to migrate database")
	}

	r := router.NewRouter(store.New(gdb), tokens)

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		logger.Get().Info().Msg("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to start server")
	}
}
