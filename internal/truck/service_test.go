package truck

import (
	"testing"
	"time"

	"frota-backend/internal/database"
	"frota-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestDeleteCascade(t *testing.T) {
	db := setupDB(t)

	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	target := models.Truck{Plate: "DEL-0001"}
	require.NoError(t, db.Create(&target).Error)
	other := models.Truck{Plate: "KEEP-0002"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&models.FuelExpense{TruckID: target.ID, Liters: 80, PricePerLiter: 5, Mileage: 50000, ExpenseDate: day}).Error)
	require.NoError(t, db.Create(&models.FuelExpense{TruckID: target.ID, Liters: 60, PricePerLiter: 5.2, Mileage: 51000, ExpenseDate: day}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: target.ID, Amount: 300, ExpenseDate: day}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Revenue{TruckID: target.ID, Amount: 1000, RevenueDate: day}).Error)
	}

	// Registros do outro caminhão e uma despesa geral não podem ser afetados
	require.NoError(t, db.Create(&models.Revenue{TruckID: other.ID, Amount: 500, RevenueDate: day}).Error)
	require.NoError(t, db.Create(&models.OtherExpense{Category: "Contabilidade", Amount: 450, ExpenseDate: day}).Error)

	affected, err := DeleteCascade(db, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var count int64
	require.NoError(t, db.Model(&models.FuelExpense{}).Where("truck_id = ?", target.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.DriverExpense{}).Where("truck_id = ?", target.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.MaintenanceExpense{}).Where("truck_id = ?", target.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Revenue{}).Where("truck_id = ?", target.ID).Count(&count).Error)
	assert.Zero(t, count)

	var targetCount int64
	require.NoError(t, db.Model(&models.Truck{}).Where("id = ?", target.ID).Count(&targetCount).Error)
	assert.Zero(t, targetCount)

	// O outro caminhão e seus lançamentos seguem intactos
	require.NoError(t, db.Model(&models.Truck{}).Where("id = ?", other.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, db.Model(&models.Revenue{}).Where("truck_id = ?", other.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Despesas gerais não pertencem a caminhão nenhum
	require.NoError(t, db.Model(&models.OtherExpense{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCascadeTruckNotFound(t *testing.T) {
	db := setupDB(t)

	affected, err := DeleteCascade(db, 999)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
