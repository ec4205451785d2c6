package report

import (
	"time"

	"frota-backend/internal/models"

	"gorm.io/gorm"
)

// Linhas agregadas dos relatórios. Os subtotais sempre voltam zerados quando
// não há lançamentos no período (nunca null), e o combustível é sempre
// recalculado como SUM(liters * price_per_liter).

type TruckBalance struct {
	ID                       uint    `json:"id"`
	Plate                    string  `json:"plate"`
	TotalRevenue             float64 `json:"total_revenue"`
	TotalFuelExpenses        float64 `json:"total_fuel_expenses"`
	TotalDriverExpenses      float64 `json:"total_driver_expenses"`
	TotalMaintenanceExpenses float64 `json:"total_maintenance_expenses"`
	Balance                  float64 `json:"balance"`
}

type MonthlyTruckSummary struct {
	ID                         uint    `json:"id"`
	Plate                      string  `json:"plate"`
	MonthlyRevenue             float64 `json:"monthly_revenue"`
	MonthlyFuelExpenses        float64 `json:"monthly_fuel_expenses"`
	MonthlyDriverExpenses      float64 `json:"monthly_driver_expenses"`
	MonthlyMaintenanceExpenses float64 `json:"monthly_maintenance_expenses"`
	MonthlyBalance             float64 `json:"monthly_balance"`
}

type DriverExpensesTotal struct {
	TotalDriverExpenses float64 `json:"total_driver_expenses"`
	TotalRecords        int64   `json:"total_records"`
}

func monthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func sumWhere(db *gorm.DB, model interface{}, expr string, query string, args ...interface{}) (float64, error) {
	var total float64
	err := db.Model(model).
		Select("COALESCE(SUM("+expr+"), 0)").
		Where(query, args...).
		Scan(&total).Error
	return total, err
}

// GetTruckBalance calcula o balanço de todo o histórico de um caminhão.
// Retorna gorm.ErrRecordNotFound quando o caminhão não existe.
func GetTruckBalance(db *gorm.DB, truckID uint) (*TruckBalance, error) {
	var t models.Truck
	if err := db.First(&t, "id = ?", truckID).Error; err != nil {
		return nil, err
	}

	revenue, err := sumWhere(db, &models.Revenue{}, "amount", "truck_id = ?", truckID)
	if err != nil {
		return nil, err
	}
	fuel, err := sumWhere(db, &models.FuelExpense{}, "liters * price_per_liter", "truck_id = ?", truckID)
	if err != nil {
		return nil, err
	}
	driver, err := sumWhere(db, &models.DriverExpense{}, "amount", "truck_id = ?", truckID)
	if err != nil {
		return nil, err
	}
	maintenance, err := sumWhere(db, &models.MaintenanceExpense{}, "amount", "truck_id = ?", truckID)
	if err != nil {
		return nil, err
	}

	return &TruckBalance{
		ID:                       t.ID,
		Plate:                    t.Plate,
		TotalRevenue:             revenue,
		TotalFuelExpenses:        fuel,
		TotalDriverExpenses:      driver,
		TotalMaintenanceExpenses: maintenance,
		Balance:                  revenue - (fuel + driver + maintenance),
	}, nil
}

// GetMonthlyTruckSummary calcula o resumo de um caminhão no período, com as
// mesmas quatro agregações do balanço filtradas pela coluna de data de cada
// lançamento.
func GetMonthlyTruckSummary(db *gorm.DB, truckID uint, year, month int) (*MonthlyTruckSummary, error) {
	var t models.Truck
	if err := db.First(&t, "id = ?", truckID).Error; err != nil {
		return nil, err
	}

	first, last := monthRange(year, month)

	revenue, err := sumWhere(db, &models.Revenue{}, "amount",
		"truck_id = ? AND revenue_date >= ? AND revenue_date <= ?", truckID, first, last)
	if err != nil {
		return nil, err
	}
	fuel, err := sumWhere(db, &models.FuelExpense{}, "liters * price_per_liter",
		"truck_id = ? AND expense_date >= ? AND expense_date <= ?", truckID, first, last)
	if err != nil {
		return nil, err
	}
	driver, err := sumWhere(db, &models.DriverExpense{}, "amount",
		"truck_id = ? AND expense_date >= ? AND expense_date <= ?", truckID, first, last)
	if err != nil {
		return nil, err
	}
	maintenance, err := sumWhere(db, &models.MaintenanceExpense{}, "amount",
		"truck_id = ? AND expense_date >= ? AND expense_date <= ?", truckID, first, last)
	if err != nil {
		return nil, err
	}

	return &MonthlyTruckSummary{
		ID:                         t.ID,
		Plate:                      t.Plate,
		MonthlyRevenue:             revenue,
		MonthlyFuelExpenses:        fuel,
		MonthlyDriverExpenses:      driver,
		MonthlyMaintenanceExpenses: maintenance,
		MonthlyBalance:             revenue - (fuel + driver + maintenance),
	}, nil
}

// GetGeneralMonthlySummary calcula o resumo do período para TODOS os
// caminhões, ordenados por placa. Caminhões sem movimento no mês aparecem
// zerados: o relatório cobre a frota inteira, não só os ativos.
func GetGeneralMonthlySummary(db *gorm.DB, year, month int) ([]MonthlyTruckSummary, error) {
	first, last := monthRange(year, month)

	var trucks []models.Truck
	if err := db.Order("plate asc").Find(&trucks).Error; err != nil {
		return nil, err
	}

	type truckTotal struct {
		TruckID uint    `gorm:"column:truck_id"`
		Total   float64 `gorm:"column:total"`
	}

	sumByTruck := func(model interface{}, expr, dateCol string) (map[uint]float64, error) {
		var rows []truckTotal
		err := db.Model(model).
			Select("truck_id, SUM("+expr+") as total").
			Where(dateCol+" >= ? AND "+dateCol+" <= ?", first, last).
			Group("truck_id").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		totals := make(map[uint]float64, len(rows))
		for _, r := range rows {
			totals[r.TruckID] = r.Total
		}
		return totals, nil
	}

	revenues, err := sumByTruck(&models.Revenue{}, "amount", "revenue_date")
	if err != nil {
		return nil, err
	}
	fuels, err := sumByTruck(&models.FuelExpense{}, "liters * price_per_liter", "expense_date")
	if err != nil {
		return nil, err
	}
	drivers, err := sumByTruck(&models.DriverExpense{}, "amount", "expense_date")
	if err != nil {
		return nil, err
	}
	maintenances, err := sumByTruck(&models.MaintenanceExpense{}, "amount", "expense_date")
	if err != nil {
		return nil, err
	}

	summaries := make([]MonthlyTruckSummary, 0, len(trucks))
	for _, t := range trucks {
		row := MonthlyTruckSummary{
			ID:                         t.ID,
			Plate:                      t.Plate,
			MonthlyRevenue:             revenues[t.ID],
			MonthlyFuelExpenses:        fuels[t.ID],
			MonthlyDriverExpenses:      drivers[t.ID],
			MonthlyMaintenanceExpenses: maintenances[t.ID],
		}
		row.MonthlyBalance = row.MonthlyRevenue - (row.MonthlyFuelExpenses + row.MonthlyDriverExpenses + row.MonthlyMaintenanceExpenses)
		summaries = append(summaries, row)
	}
	return summaries, nil
}

// GetDriverExpensesTotal soma as despesas com motoristas do período inteiro,
// todos os caminhões juntos (card da aba Despesas).
func GetDriverExpensesTotal(db *gorm.DB, year, month int) (*DriverExpensesTotal, error) {
	first, last := monthRange(year, month)

	var row struct {
		Total   float64 `gorm:"column:total"`
		Records int64   `gorm:"column:records"`
	}
	if err := db.Model(&models.DriverExpense{}).
		Select("COALESCE(SUM(amount), 0) as total, COUNT(*) as records").
		Where("expense_date >= ? AND expense_date <= ?", first, last).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &DriverExpensesTotal{
		TotalDriverExpenses: row.Total,
		TotalRecords:        row.Records,
	}, nil
}
