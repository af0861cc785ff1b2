package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers account routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/auth/register - Create an account
	router.POST("/register", Register(deps))

	// POST /api/v1/auth/login - Exchange credentials for a token
	router.POST("/login", Login(deps))

	// GET /api/v1/auth/me - Current account details
	router.GET("/me", Middleware(deps), Me(deps))
}
