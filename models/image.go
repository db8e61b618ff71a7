package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

type Image struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	FileName  string         `json:"file_name" gorm:"not null"`
	FileURL   string         `json:"file_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func SaveImage(db *gorm.DB, fileName, fileURL string) (*Image, error) {
	img := &Image{
		FileName: fileName,
		FileURL:  fileURL,
	}
	if err := db.Create(img).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved image in DB: %s -> %s", fileName, fileURL)
	return img, nil
}

func GetAllImages(db *gorm.DB) ([]Image, error) {
	var images []Image
	if err := db.Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
