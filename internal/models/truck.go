package models

import "time"

type Truck struct {
	ID        uint   `gorm:"primaryKey"`
	Plate     string `gorm:"size:20;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
