package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string  `gorm:"index" json:"category"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`       // list price
	OfferPrice  float64 `gorm:"not null" json:"offer_price"` // selling price
	Image       string  `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
