package models

import "time"

type MaintenanceExpense struct {
	ID          uint `gorm:"primaryKey"`
	TruckID     uint `gorm:"index;not null"`
	Truck       Truck
	Amount      float64   `gorm:"not null"`
	Mileage     *int      // opcional
	Description string    `gorm:"size:255"`
	ExpenseDate time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
