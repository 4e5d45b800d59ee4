package jsonrpc

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
)

// RegisterRoutes mounts the JSON-RPC endpoint. Every call is authenticated.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.POST("/jsonrpc", mw.Auth(), h.Handle)
}
