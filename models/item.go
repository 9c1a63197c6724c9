package models

import (
	"time"
)

// Item kinds
const (
	ItemKindBook = "book"
	ItemKindGame = "game"
)

// Item is a catalog entry for something that can be lent (a book or a game).
// It carries the descriptive metadata only; who is lending it and whether it
// is currently lendable lives on Offer.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Kind        string    `gorm:"size:10;not null;index" json:"kind"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Author      string    `gorm:"size:255" json:"author,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CatalogRef  string    `gorm:"size:120" json:"catalog_ref,omitempty"` // external catalog id (barcode, BGG id)
	CreatedByID uint      `gorm:"not null;index" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OfferStatus is the availability state of a lend offer
type OfferStatus string

const (
	OfferAvailable   OfferStatus = "available"
	OfferCheckedOut  OfferStatus = "checked_out"
	OfferUnavailable OfferStatus = "unavailable"
)

// Offer is one user's standing offer to lend a catalog item. Pending
// requesters are not stored here; they are the offer's non-terminal
// borrow requests.
type Offer struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	ItemID    uint        `gorm:"not null;index" json:"item_id"`
	Item      Item        `gorm:"foreignKey:ItemID" json:"item"`
	OwnerID   uint        `gorm:"not null;index" json:"owner_id"`
	Owner     User        `gorm:"foreignKey:OwnerID" json:"owner"`
	Status    OfferStatus `gorm:"size:20;not null;default:'available'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OfferInput holds data for listing a new item offering
type OfferInput struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CatalogRef  string `json:"catalog_ref"`
}

// AvailabilityInput holds data for toggling an offer's availability
type AvailabilityInput struct {
	Status OfferStatus `json:"status" binding:"required,oneof=available unavailable"`
}
