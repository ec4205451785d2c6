package models

import "time"

type Revenue struct {
	ID          uint `gorm:"primaryKey"`
	TruckID     uint `gorm:"index;not null"`
	Truck       Truck
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"size:255"`
	RevenueDate time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
