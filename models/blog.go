package models

import (
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string `gorm:"type:text" json:"content"`
	Image     string `json:"image"`
	Product   string `json:"product"` // name of the product the post promotes
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
