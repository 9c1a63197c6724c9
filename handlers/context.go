package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/middleware"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// currentUser returns the authenticated user set by AuthMiddleware. When the
// user is missing the request is answered with 401 and ok is false.
func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(middleware.CurrentUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return models.User{}, false
	}
	return value.(models.User), true
}
