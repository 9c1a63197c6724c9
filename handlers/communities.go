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

// CreateCommunity creates a community and adds the creator as its first member
func CreateCommunity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.CommunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community := models.Community{
		Name:        input.Name,
		Description: input.Description,
		Passcode:    input.Passcode,
		CreatorID:   user.ID,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&community).Error; err != nil {
			return err
		}
		member := models.CommunityMember{CommunityID: community.ID, UserID: user.ID}
		return tx.Create(&member).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "community name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create community"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "community created successfully",
		"community": community,
	})
}

// ListCommunities returns every community, for discovery
func ListCommunities(c *gin.Context) {
	var communities []models.Community
	if err := config.DB.Order("name").Find(&communities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch communities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"communities": communities})
}

// JoinCommunity adds the caller to a community when the passcode matches
func JoinCommunity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var community models.Community
	if err := config.DB.First(&community, input.CommunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if community.Passcode != input.Passcode {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect passcode"})
		return
	}

	member := models.CommunityMember{CommunityID: community.ID, UserID: user.ID}
	if err := config.DB.Create(&member).Error; err != nil {
		// the composite unique index catches repeat joins
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "already a member of this community"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join community"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "joined community successfully",
		"community": community,
	})
}

// LeaveCommunity removes the caller from a community's member set
func LeaveCommunity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	communityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid community ID"})
		return
	}

	result := config.DB.
		Where("community_id = ? AND user_id = ?", communityID, user.ID).
		Delete(&models.CommunityMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave community"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not a member of this community"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left community successfully"})
}

// UserCommunities returns the communities the caller belongs to
func UserCommunities(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var communities []models.Community
	err := config.DB.
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", user.ID).
		Order("communities.name").
		Find(&communities).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch communities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"communities": communities})
}
