package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup is a set of routes reachable without authentication
// beyond the API group's own middleware.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup is a set of routes that applies its own auth
// middleware from the router configuration.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
