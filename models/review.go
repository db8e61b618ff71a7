package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `gorm:"default:false" json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
