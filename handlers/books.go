package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// MyBooks returns the caller's book offers
func MyBooks(c *gin.Context) {
	listMine(c, models.ItemKindBook)
}

// AvailableBooks returns book offers lendable within the caller's communities
func AvailableBooks(c *gin.Context) {
	listAvailable(c, models.ItemKindBook)
}

// CreateBook lists a new book as lendable
func CreateBook(c *gin.Context) {
	createOffer(c, models.ItemKindBook)
}

// UpdateBookAvailability toggles a book offer's availability
func UpdateBookAvailability(c *gin.Context) {
	updateAvailability(c, models.ItemKindBook)
}

// DeleteBook removes a book offering
func DeleteBook(c *gin.Context) {
	deleteOffer(c, models.ItemKindBook)
}
