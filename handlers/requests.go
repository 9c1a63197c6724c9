package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

// CreateRequest opens a borrow request against an available offer
func CreateRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.BorrowRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var offer models.Offer
	if err := config.DB.First(&offer, input.OfferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if offer.OwnerID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot request your own offering"})
		return
	}

	if offer.Status != models.OfferAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "offer is not available"})
		return
	}

	// One active request per (offer, requester)
	var active int64
	err := config.DB.Model(&models.BorrowRequest{}).
		Where("offer_id = ? AND requester_id = ? AND status IN (?)",
			offer.ID, user.ID, models.ActiveRequestStatuses()).
		Count(&active).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "you already have an active request for this offer"})
		return
	}

	request := models.BorrowRequest{
		OfferID:     offer.ID,
		RequesterID: user.ID,
		Status:      models.RequestRequested,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "borrow request created",
		"request": request,
	})
}

// RescindRequest withdraws a pending request. Only the original requester may
// rescind, and only while the request is still in the requested state; any
// mismatch reads as not found.
func RescindRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var request models.BorrowRequest
	err = config.DB.
		Where("id = ? AND requester_id = ? AND status = ?",
			requestID, user.ID, models.RequestRequested).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	request.Status = models.RequestRescinded
	if err := config.DB.Model(&request).Update("status", models.RequestRescinded).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rescind request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "request rescinded",
		"request": request,
	})
}

// ownerTransition moves a request to target on behalf of the offer's owner,
// applying the offer-status side effects for borrowed and returned.
func ownerTransition(c *gin.Context, target models.RequestStatus) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var request models.BorrowRequest
	err = config.DB.Preload("Offer").First(&request, requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if request.Offer.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the lender may update this request"})
		return
	}

	if !request.Status.CanTransition(target) {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("cannot move request from %s to %s", request.Status, target),
		})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", target).Error; err != nil {
			return err
		}
		switch target {
		case models.RequestBorrowed:
			return tx.Model(&models.Offer{}).Where("id = ?", request.OfferID).
				Update("status", models.OfferCheckedOut).Error
		case models.RequestReturned:
			return tx.Model(&models.Offer{}).Where("id = ?", request.OfferID).
				Update("status", models.OfferAvailable).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update request"})
		return
	}

	request.Status = target
	c.JSON(http.StatusOK, gin.H{
		"message": "request updated",
		"request": request,
	})
}

// AcceptRequest marks a pending request as accepted by the lender
func AcceptRequest(c *gin.Context) {
	ownerTransition(c, models.RequestAccepted)
}

// DeclineRequest marks a pending request as declined by the lender
func DeclineRequest(c *gin.Context) {
	ownerTransition(c, models.RequestDeclined)
}

// MarkBorrowed records the handover; the offer becomes checked out
func MarkBorrowed(c *gin.Context) {
	ownerTransition(c, models.RequestBorrowed)
}

// MarkReturned records the return; the offer becomes available again
func MarkReturned(c *gin.Context) {
	ownerTransition(c, models.RequestReturned)
}

// OutgoingRequests returns requests the caller has made
func OutgoingRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var requests []models.BorrowRequest
	err := config.DB.Preload("Offer").Preload("Offer.Item").Preload("Offer.Owner").
		Where("requester_id = ?", user.ID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// IncomingRequests returns requests made against the caller's offers
func IncomingRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var requests []models.BorrowRequest
	err := config.DB.Preload("Offer").Preload("Offer.Item").Preload("Requester").
		Joins("JOIN offers ON offers.id = borrow_requests.offer_id").
		Where("offers.owner_id = ?", user.ID).
		Order("borrow_requests.created_at DESC").
		Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
