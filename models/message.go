package models

import (
	"time"
)

// Message is a directed text message between two users. Messages are
// immutable once created.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Read       bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// MessageInput holds data for sending a message
type MessageInput struct {
	ReceiverUsername string `json:"receiver_username" binding:"required"`
	Body             string `json:"body" binding:"required"`
}
