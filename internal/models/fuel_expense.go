package models

import "time"

// FuelExpense - abastecimento de um caminhão. O valor gasto nunca é
// armazenado: sempre recalculado como liters * price_per_liter.
type FuelExpense struct {
	ID            uint `gorm:"primaryKey"`
	TruckID       uint `gorm:"index;not null"`
	Truck         Truck
	Liters        float64   `gorm:"not null"`
	PricePerLiter float64   `gorm:"not null"`
	Mileage       int       `gorm:"not null"` // quilometragem no abastecimento
	ExpenseDate   time.Time `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Total calcula o valor gasto no abastecimento.
func (f FuelExpense) Total() float64 {
	return f.Liters * f.PricePerLiter
}
