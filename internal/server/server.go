package server

import (
	"net/http"
	"time"

	"anoa.com/spacemanagement/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server is one of the two HTTP services with its gin engine.
type Server struct {
	engine *gin.Engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the engine, mainly to httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func newEngine(allowedOrigins []string) *gin.Engine {
	router := gin.New()

	setupCORS(router, allowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	return router
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", "Retry-After", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
