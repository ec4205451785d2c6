package ledger

import (
	"frota-backend/internal/models"
	"frota-backend/internal/numeric"
	"frota-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FuelExpenseRequest struct {
	TruckID       uint             `json:"truck_id" validate:"required"`
	Liters        *numeric.Decimal `json:"liters" validate:"required,gt=0"`
	PricePerLiter *numeric.Decimal `json:"price_per_liter" validate:"required,gte=0"`
	Mileage       *int             `json:"mileage" validate:"required,gte=0"`
	ExpenseDate   string           `json:"expense_date" validate:"required"`
}

type FuelExpenseResponse struct {
	ID            uint    `json:"id"`
	TruckID       uint    `json:"truck_id"`
	Plate         string  `json:"plate"`
	Liters        float64 `json:"liters"`
	PricePerLiter float64 `json:"price_per_liter"`
	Mileage       int     `json:"mileage"`
	Total         float64 `json:"total"` // sempre recalculado, nunca armazenado
	ExpenseDate   string  `json:"expense_date"`
}

func fuelExpenseResponse(f models.FuelExpense) FuelExpenseResponse {
	return FuelExpenseResponse{
		ID:            f.ID,
		TruckID:       f.TruckID,
		Plate:         f.Truck.Plate,
		Liters:        f.Liters,
		PricePerLiter: f.PricePerLiter,
		Mileage:       f.Mileage,
		Total:         f.Total(),
		ExpenseDate:   f.ExpenseDate.Format(dateLayout),
	}
}

func fuelExpenseResponses(rows []models.FuelExpense) []FuelExpenseResponse {
	resp := make([]FuelExpenseResponse, 0, len(rows))
	for _, f := range rows {
		resp = append(resp, fuelExpenseResponse(f))
	}
	return resp
}

// POST /api/fuel_expenses
func CreateFuelExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FuelExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		exp := models.FuelExpense{
			TruckID:       body.TruckID,
			Liters:        body.Liters.Float64(),
			PricePerLiter: body.PricePerLiter.Float64(),
			Mileage:       *body.Mileage,
			ExpenseDate:   d,
		}
		if err := db.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de combustível não pôde ser salva")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Despesa de combustível criada com sucesso",
			"id":      exp.ID,
		})
	}
}

// GET /api/fuel_expenses
func ListFuelExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.FuelExpense
		if err := db.Preload("Truck").
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de combustível não puderam ser listadas")
		}
		return c.JSON(fuelExpenseResponses(rows))
	}
}

// GET /api/fuel_expenses/truck/:truck_id
func ListFuelExpensesByTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}

		var rows []models.FuelExpense
		if err := db.Preload("Truck").
			Where("truck_id = ?", truckID).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de combustível não puderam ser listadas")
		}
		return c.JSON(fuelExpenseResponses(rows))
	}
}

// GET /api/fuel_expenses/by-period?year=2025&month=3
func ListFuelExpensesByPeriodHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []models.FuelExpense
		if err := db.Preload("Truck").
			Where("expense_date >= ? AND expense_date <= ?", first, last).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de combustível não puderam ser listadas")
		}
		return c.JSON(fuelExpenseResponses(rows))
	}
}

// GET /api/fuel_expenses/:id
func GetFuelExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.FuelExpense
		if err := db.Preload("Truck").First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fuelExpenseResponse(exp))
	}
}

// PUT /api/fuel_expenses/:id
func UpdateFuelExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.FuelExpense
		if err := db.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}

		var body FuelExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validation.Struct(&body); err != nil {
			return err
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return err
		}
		if _, err := findTruck(db, body.TruckID); err != nil {
			return err
		}

		exp.TruckID = body.TruckID
		exp.Liters = body.Liters.Float64()
		exp.PricePerLiter = body.PricePerLiter.Float64()
		exp.Mileage = *body.Mileage
		exp.ExpenseDate = d

		if err := db.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de combustível não pôde ser atualizada")
		}
		return c.JSON(fiber.Map{"message": "Despesa de combustível atualizada com sucesso"})
	}
}

// DELETE /api/fuel_expenses/:id
func DeleteFuelExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		res := db.Delete(&models.FuelExpense{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de combustível não pôde ser excluída")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fiber.Map{"message": "Despesa de combustível excluída com sucesso"})
	}
}
