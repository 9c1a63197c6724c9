package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// MyGames returns the caller's game offers
func MyGames(c *gin.Context) {
	listMine(c, models.ItemKindGame)
}

// AvailableGames returns game offers lendable within the caller's communities
func AvailableGames(c *gin.Context) {
	listAvailable(c, models.ItemKindGame)
}

// CreateGame lists a new game as lendable
func CreateGame(c *gin.Context) {
	createOffer(c, models.ItemKindGame)
}

// UpdateGameAvailability toggles a game offer's availability
func UpdateGameAvailability(c *gin.Context) {
	updateAvailability(c, models.ItemKindGame)
}

// DeleteGame removes a game offering
func DeleteGame(c *gin.Context) {
	deleteOffer(c, models.ItemKindGame)
}
