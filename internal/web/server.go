// Package web serves the board page and the JSON API.
package web

import (
	"github.com/gin-gonic/gin"
)

// Server is the agenda web server.
type Server struct {
	svc    BoardService
	router *gin.Engine
}

// NewServer creates a web server around a board service.
func NewServer(svc BoardService) *Server {
	router := gin.Default()

	s := &Server{
		svc:    svc,
		router: router,
	}

	router.LoadHTMLGlob("web/templates/*")

	// Web routes
	router.GET("/", s.handleBoard)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/week", s.handleAPIWeek)
		api.GET("/chart", s.handleAPIChart)
		api.POST("/tasks", s.handleAPICreate)
		api.PUT("/tasks/:id", s.handleAPIUpdate)
		api.DELETE("/tasks/:id", s.handleAPIDelete)
		api.PUT("/week", s.handleAPISetWeek)
		api.POST("/import", s.handleAPIImport)
		api.GET("/export", s.handleAPIExport)
		api.GET("/template", s.handleAPITemplate)
	}

	return s
}

// Run starts the web server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
