package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"mixedpower/app"
)

// Server exposes the power service over HTTP.
type Server struct {
	router  *gin.Engine
	service *app.PowerService
}

// NewServer creates a new API server instance
func NewServer(service *app.PowerService) *Server {
	router := gin.Default()
	s := &Server{
		router:  router,
		service: service,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestIDMiddleware())

	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/power", s.handlePower)
		api.POST("/solve", s.handleSolve)
		api.POST("/sweep", s.handleSweep)
	}
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	log.Printf("Starting mixedpower API on port %s", port)
	return s.router.Run(":" + port)
}
