package main

import (
	"unvaultd/pkg/config"
	app "unvaultd/services/auth/internal/app"

	_ "unvaultd/services/auth/docs" // Swagger docs
)

// @title           Auth Service API
// @version         1.0
// @description     Members, sessions, profiles and follows for the Unvaultd archive

// @host      localhost:8001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.HasDefaultJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
