package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
)

// CheckConnection verifies the database connection is alive
func CheckConnection(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "database handle unavailable"})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
