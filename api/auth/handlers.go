package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/services/users"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIsAdmin  = "isAdmin"
)

// Register creates a new account
func Register(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("username, email, and password are required"))
			return
		}

		user, err := deps.UserService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrDuplicateUser) {
				c.JSON(http.StatusConflict, types.NewErrorResponse("Username or email already registered"))
				return
			}
			c.JSON(http.StatusBadRequest, types.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Account created"},
			User:         user,
		})
	}
}

// Login authenticates and returns a bearer token
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("username and password are required"))
			return
		}

		token, user, err := deps.UserService.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid username or password"))
			case errors.Is(err, users.ErrAccountDisabled):
				c.JSON(http.StatusForbidden, types.NewErrorResponse("Account is disabled"))
			default:
				log.Printf("[ERROR] Login for %q: %v", req.Username, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Login failed"))
			}
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Logged in"},
			Token:        token,
			User:         user,
		})
	}
}

// Me returns the account behind the presented token
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		user, err := deps.UserService.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, types.NewErrorResponse("User not found"))
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			User:         user,
		})
	}
}

// Middleware rejects requests without a valid bearer token and records the
// caller's identity on the context.
func Middleware(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Missing bearer token"))
			return
		}

		claims, err := deps.UserService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, users.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Token expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid token"))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse("Invalid token"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly requires Middleware to have run first.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, types.NewErrorResponse("Admin access required"))
			return
		}
		c.Next()
	}
}
