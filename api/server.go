package api

import (
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the lattice pricer service.
type Server struct {
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer() *Server {
	server := &Server{}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	v1 := router.Group("/v1")
	v1.POST("/pricer", server.pricer)
	v1.POST("/bench", server.bench)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
