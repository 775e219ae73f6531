package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmarket/snapmarket-api/internal/config"
	dbpkg "github.com/snapmarket/snapmarket-api/internal/db"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/routes"
	"github.com/snapmarket/snapmarket-api/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := config.NewRedisClient(cfg)
	if rdb == nil {
		log.Println("redis unavailable, sign-out revocation disabled")
	}
	sessions := session.NewStore(rdb)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
