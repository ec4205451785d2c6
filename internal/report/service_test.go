package report

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

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestGetTruckBalance(t *testing.T) {
	db := setupDB(t)

	truck := models.Truck{Plate: "ABC-1234"}
	require.NoError(t, db.Create(&truck).Error)

	require.NoError(t, db.Create(&models.Revenue{TruckID: truck.ID, Amount: 5000, RevenueDate: date(2026, 1, 10)}).Error)
	require.NoError(t, db.Create(&models.Revenue{TruckID: truck.ID, Amount: 3000, RevenueDate: date(2026, 2, 10)}).Error)
	require.NoError(t, db.Create(&models.FuelExpense{TruckID: truck.ID, Liters: 100, PricePerLiter: 5.50, Mileage: 120000, ExpenseDate: date(2026, 1, 12)}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truck.ID, Amount: 600, ExpenseDate: date(2026, 1, 15)}).Error)
	require.NoError(t, db.Create(&models.MaintenanceExpense{TruckID: truck.ID, Amount: 850, ExpenseDate: date(2026, 2, 20)}).Error)

	balance, err := GetTruckBalance(db, truck.ID)
	require.NoError(t, err)

	assert.Equal(t, "ABC-1234", balance.Plate)
	assert.InDelta(t, 8000, balance.TotalRevenue, 0.001)
	assert.InDelta(t, 550, balance.TotalFuelExpenses, 0.001) // 100 * 5.50
	assert.InDelta(t, 600, balance.TotalDriverExpenses, 0.001)
	assert.InDelta(t, 850, balance.TotalMaintenanceExpenses, 0.001)
	assert.InDelta(t, balance.TotalRevenue-(balance.TotalFuelExpenses+balance.TotalDriverExpenses+balance.TotalMaintenanceExpenses), balance.Balance, 0.001)
}

func TestGetTruckBalanceWithoutRecords(t *testing.T) {
	db := setupDB(t)

	truck := models.Truck{Plate: "XYZ-0001"}
	require.NoError(t, db.Create(&truck).Error)

	balance, err := GetTruckBalance(db, truck.ID)
	require.NoError(t, err)

	assert.Zero(t, balance.TotalRevenue)
	assert.Zero(t, balance.TotalFuelExpenses)
	assert.Zero(t, balance.TotalDriverExpenses)
	assert.Zero(t, balance.TotalMaintenanceExpenses)
	assert.Zero(t, balance.Balance)
}

func TestGetTruckBalanceTruckNotFound(t *testing.T) {
	db := setupDB(t)

	_, err := GetTruckBalance(db, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetMonthlyTruckSummaryFiltersByPeriod(t *testing.T) {
	db := setupDB(t)

	truck := models.Truck{Plate: "DEF-5678"}
	require.NoError(t, db.Create(&truck).Error)

	// Janeiro: dentro do período
	require.NoError(t, db.Create(&models.Revenue{TruckID: truck.ID, Amount: 2000, RevenueDate: date(2026, 1, 5)}).Error)
	require.NoError(t, db.Create(&models.Revenue{TruckID: truck.ID, Amount: 1000, RevenueDate: date(2026, 1, 31)}).Error)
	require.NoError(t, db.Create(&models.FuelExpense{TruckID: truck.ID, Liters: 50, PricePerLiter: 6, Mileage: 100000, ExpenseDate: date(2026, 1, 20)}).Error)

	// Fevereiro: fora do período consultado
	require.NoError(t, db.Create(&models.Revenue{TruckID: truck.ID, Amount: 9999, RevenueDate: date(2026, 2, 1)}).Error)

	summary, err := GetMonthlyTruckSummary(db, truck.ID, 2026, 1)
	require.NoError(t, err)

	assert.InDelta(t, 3000, summary.MonthlyRevenue, 0.001)
	assert.InDelta(t, 300, summary.MonthlyFuelExpenses, 0.001)
	assert.InDelta(t, 2700, summary.MonthlyBalance, 0.001)
}

func TestGetGeneralMonthlySummary(t *testing.T) {
	db := setupDB(t)

	// Placas fora de ordem para verificar a ordenação
	truckB := models.Truck{Plate: "BBB-2222"}
	require.NoError(t, db.Create(&truckB).Error)
	truckA := models.Truck{Plate: "AAA-1111"}
	require.NoError(t, db.Create(&truckA).Error)

	require.NoError(t, db.Create(&models.Revenue{TruckID: truckA.ID, Amount: 4000, RevenueDate: date(2026, 3, 10)}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truckA.ID, Amount: 500, ExpenseDate: date(2026, 3, 12)}).Error)

	summaries, err := GetGeneralMonthlySummary(db, 2026, 3)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "AAA-1111", summaries[0].Plate)
	assert.InDelta(t, 4000, summaries[0].MonthlyRevenue, 0.001)
	assert.InDelta(t, 3500, summaries[0].MonthlyBalance, 0.001)

	// Caminhão sem movimento aparece zerado, não some do relatório
	assert.Equal(t, "BBB-2222", summaries[1].Plate)
	assert.Zero(t, summaries[1].MonthlyRevenue)
	assert.Zero(t, summaries[1].MonthlyBalance)
}

func TestGetDriverExpensesTotal(t *testing.T) {
	db := setupDB(t)

	truck := models.Truck{Plate: "GHI-9012"}
	require.NoError(t, db.Create(&truck).Error)

	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truck.ID, Amount: 200, ExpenseDate: date(2026, 4, 1)}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truck.ID, Amount: 150, ExpenseDate: date(2026, 4, 30)}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truck.ID, Amount: 250, ExpenseDate: date(2026, 4, 15)}).Error)
	require.NoError(t, db.Create(&models.DriverExpense{TruckID: truck.ID, Amount: 999, ExpenseDate: date(2026, 5, 1)}).Error)

	total, err := GetDriverExpensesTotal(db, 2026, 4)
	require.NoError(t, err)

	assert.InDelta(t, 600, total.TotalDriverExpenses, 0.001)
	assert.Equal(t, int64(3), total.TotalRecords)
}

func TestGetDriverExpensesTotalEmptyMonth(t *testing.T) {
	db := setupDB(t)

	total, err := GetDriverExpensesTotal(db, 2026, 12)
	require.NoError(t, err)

	assert.Zero(t, total.TotalDriverExpenses)
	assert.Zero(t, total.TotalRecords)
}

func TestMonthRangeCoversWholeMonth(t *testing.T) {
	first, last := monthRange(2026, 2)
	assert.Equal(t, date(2026, 2, 1), first)
	assert.Equal(t, date(2026, 2, 28), last)

	first, last = monthRange(2024, 2) // bissexto
	assert.Equal(t, date(2024, 2, 1), first)
	assert.Equal(t, date(2024, 2, 29), last)
}
