package models

import "gorm.io/gorm"

type Blog struct {
	gorm.Model

	Title    string `gorm:"not null"`
	Content  string `gorm:"not null"`
	ImageURL string
	AuthorID uint `gorm:"not null;index"`

	// Relationships
	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
