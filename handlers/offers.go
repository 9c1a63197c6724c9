package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// The books and games routes share these handlers; each route mounts them
// scoped to its item kind (see books.go and games.go).

// findKindOffer loads an offer of the given kind by the :id route parameter.
func findKindOffer(c *gin.Context, kind string) (models.Offer, bool) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer ID"})
		return models.Offer{}, false
	}

	var offer models.Offer
	err = config.DB.Preload("Item").
		Joins("JOIN items ON items.id = offers.item_id").
		Where("offers.id = ? AND items.kind = ?", offerID, kind).
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return models.Offer{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return models.Offer{}, false
	}

	return offer, true
}

// listMine returns all offers owned by the caller for one kind
func listMine(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var offers []models.Offer
	err := config.DB.Preload("Item").
		Joins("JOIN items ON items.id = offers.item_id").
		Where("offers.owner_id = ? AND items.kind = ?", user.ID, kind).
		Find(&offers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// listAvailable returns available offers from fellow community members,
// excluding the caller's own
func listAvailable(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// Visibility scope: owners who share at least one community with the caller
	myCommunities := config.DB.Model(&models.CommunityMember{}).
		Select("community_id").
		Where("user_id = ?", user.ID)
	fellowMembers := config.DB.Model(&models.CommunityMember{}).
		Select("user_id").
		Where("community_id IN (?)", myCommunities)

	var offers []models.Offer
	err := config.DB.Preload("Item").Preload("Owner").
		Joins("JOIN items ON items.id = offers.item_id").
		Where("items.kind = ?", kind).
		Where("offers.status = ?", models.OfferAvailable).
		Where("offers.owner_id <> ?", user.ID).
		Where("offers.owner_id IN (?)", fellowMembers).
		Find(&offers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// createOffer lists a new item as lendable by the caller
func createOffer(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Item{
		Kind:        kind,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		CatalogRef:  input.CatalogRef,
		CreatedByID: user.ID,
	}
	offer := models.Offer{OwnerID: user.ID, Status: models.OfferAvailable}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		offer.ItemID = item.ID
		return tx.Create(&offer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		return
	}

	offer.Item = item
	c.JSON(http.StatusCreated, gin.H{
		"message": "offer created successfully",
		"offer":   offer,
	})
}

// updateAvailability toggles an offer between available and unavailable
func updateAvailability(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.AvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, ok := findKindOffer(c, kind)
	if !ok {
		return
	}

	if offer.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner may change availability"})
		return
	}

	offer.Status = input.Status
	if err := config.DB.Model(&offer).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "availability updated",
		"offer":   offer,
	})
}

// deleteOffer removes an offering permanently. The catalog item is removed
// with it once no other offer references it.
func deleteOffer(c *gin.Context, kind string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	offer, ok := findKindOffer(c, kind)
	if !ok {
		return
	}

	if offer.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner may remove an offering"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Offer{}, offer.ID).Error; err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&models.Offer{}).Where("item_id = ?", offer.ItemID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Delete(&models.Item{}, offer.ItemID).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove offering"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "offering removed"})
}
