package models

import (
	"time"
)

// RequestStatus is the lifecycle state of a borrow request
type RequestStatus string

const (
	RequestRequested RequestStatus = "requested"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestBorrowed  RequestStatus = "borrowed"
	RequestReturned  RequestStatus = "returned"
	RequestRescinded RequestStatus = "rescinded"
)

// requestTransitions is the full lifecycle:
// requested -> accepted | declined | rescinded
// accepted  -> borrowed
// borrowed  -> returned
// declined, returned and rescinded are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestRequested: {RequestAccepted, RequestDeclined, RequestRescinded},
	RequestAccepted:  {RequestBorrowed},
	RequestBorrowed:  {RequestReturned},
}

// Valid reports whether s is a known status
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestRequested, RequestAccepted, RequestDeclined,
		RequestBorrowed, RequestReturned, RequestRescinded:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s
func (s RequestStatus) Terminal() bool {
	return s.Valid() && len(requestTransitions[s]) == 0
}

// CanTransition reports whether s may move to next
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// ActiveRequestStatuses are the non-terminal states. A requester may hold at
// most one request in these states per offer.
func ActiveRequestStatuses() []RequestStatus {
	return []RequestStatus{RequestRequested, RequestAccepted, RequestBorrowed}
}

// BorrowRequest records one user's interest in borrowing a specific offer.
// Requests are never deleted; rescission and decline are status transitions,
// which preserves the history.
type BorrowRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	OfferID     uint          `gorm:"not null;index" json:"offer_id"`
	Offer       Offer         `gorm:"foreignKey:OfferID" json:"offer"`
	RequesterID uint          `gorm:"not null;index" json:"requester_id"`
	Requester   User          `gorm:"foreignKey:RequesterID" json:"requester"`
	Status      RequestStatus `gorm:"size:20;not null;default:'requested'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BorrowRequestInput holds data for creating a borrow request
type BorrowRequestInput struct {
	OfferID uint `json:"offer_id" binding:"required"`
}
