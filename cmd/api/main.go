package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ravenstudio/raven-community-api/internal/config"
	dbpkg "github.com/ravenstudio/raven-community-api/internal/db"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
