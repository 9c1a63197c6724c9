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

// SendMessage delivers a message from the caller to a user named by username
func SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var receiver models.User
	err := config.DB.Where("username = ?", input.ReceiverUsername).First(&receiver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	message := models.Message{
		SenderID:   user.ID,
		ReceiverID: receiver.ID,
		Body:       input.Body,
		Read:       false,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "message sent",
		"sent":    message,
	})
}

// Conversation returns all messages between the caller and another user,
// oldest first
func Conversation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	otherID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var messages []models.Message
	err = config.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user.ID, otherID, otherID, user.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// communityContacts groups the members of one community, caller excluded
type communityContacts struct {
	CommunityID   uint          `json:"community_id"`
	CommunityName string        `json:"community_name"`
	Members       []contactInfo `json:"members"`
}

type contactInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// CommunityUsernames returns, per community of the caller, the other members
// available as messaging contacts
func CommunityUsernames(c *gin.Context) {
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

	contacts := make([]communityContacts, 0, len(communities))
	for _, community := range communities {
		var members []contactInfo
		err := config.DB.Model(&models.User{}).
			Select("users.id, users.username").
			Joins("JOIN community_members ON community_members.user_id = users.id").
			Where("community_members.community_id = ? AND users.id <> ?", community.ID, user.ID).
			Order("users.username").
			Scan(&members).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch members"})
			return
		}
		contacts = append(contacts, communityContacts{
			CommunityID:   community.ID,
			CommunityName: community.Name,
			Members:       members,
		})
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}
