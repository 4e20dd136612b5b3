package domain

import (
	"time"
)

// Sticker is a global catalog item purchasable with coins.
type Sticker struct {
	ID       int64
	Name     string
	ImageURL string
	Price    int64
}

// OwnedSticker records a user's purchase of a catalog sticker.
// At most one row exists per (user, sticker).
type OwnedSticker struct {
	UserID      string
	StickerID   int64
	Name        string
	ImageURL    string
	PurchasedAt time.Time
}
