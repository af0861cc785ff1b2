package comments

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers comment routes. The group must already carry
// the auth middleware; reading comments is public and lives under the
// episodes routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/comments - Add a comment
	router.POST("", Post(deps))

	// PUT /api/v1/comments/:id - Edit a comment
	router.PUT("/:id", Put(deps))

	// DELETE /api/v1/comments/:id - Delete a comment
	router.DELETE("/:id", Delete(deps))
}
