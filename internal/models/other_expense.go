package models

import "time"

// OtherExpense - despesa geral da empresa (não vinculada a caminhão).
// Por não ter truck_id, fica de fora da exclusão em cascata do caminhão.
type OtherExpense struct {
	ID          uint   `gorm:"primaryKey"`
	Category    string `gorm:"size:100;not null"`
	Supplier    string `gorm:"size:100"` // fornecedor, opcional
	Document    string `gorm:"size:100"` // nota fiscal/recibo, opcional
	Amount      float64   `gorm:"not null"`
	ExpenseDate time.Time `gorm:"index;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
