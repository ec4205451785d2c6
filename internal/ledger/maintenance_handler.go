package ledger

import (
	"frota-backend/internal/models"
	"frota-backend/internal/numeric"
	"frota-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaintenanceExpenseRequest struct {
	TruckID     uint             `json:"truck_id" validate:"required"`
	Amount      *numeric.Decimal `json:"amount" validate:"required,gt=0"`
	Mileage     *int             `json:"mileage" validate:"omitempty,gte=0"`
	Description string           `json:"description"`
	ExpenseDate string           `json:"expense_date" validate:"required"`
}

type MaintenanceExpenseResponse struct {
	ID          uint    `json:"id"`
	TruckID     uint    `json:"truck_id"`
	Plate       string  `json:"plate"`
	Amount      float64 `json:"amount"`
	Mileage     *int    `json:"mileage"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
}

func maintenanceExpenseResponse(m models.MaintenanceExpense) MaintenanceExpenseResponse {
	return MaintenanceExpenseResponse{
		ID:          m.ID,
		TruckID:     m.TruckID,
		Plate:       m.Truck.Plate,
		Amount:      m.Amount,
		Mileage:     m.Mileage,
		Description: m.Description,
		ExpenseDate: m.ExpenseDate.Format(dateLayout),
	}
}

func maintenanceExpenseResponses(rows []models.MaintenanceExpense) []MaintenanceExpenseResponse {
	resp := make([]MaintenanceExpenseResponse, 0, len(rows))
	for _, m := range rows {
		resp = append(resp, maintenanceExpenseResponse(m))
	}
	return resp
}

// POST /api/maintenance_expenses
func CreateMaintenanceExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MaintenanceExpenseRequest
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

		exp := models.MaintenanceExpense{
			TruckID:     body.TruckID,
			Amount:      body.Amount.Float64(),
			Mileage:     body.Mileage,
			Description: body.Description,
			ExpenseDate: d,
		}
		if err := db.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de manutenção não pôde ser salva")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Despesa de manutenção criada com sucesso",
			"id":      exp.ID,
		})
	}
}

// GET /api/maintenance_expenses
func ListMaintenanceExpensesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []models.MaintenanceExpense
		if err := db.Preload("Truck").
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de manutenção não puderam ser listadas")
		}
		return c.JSON(maintenanceExpenseResponses(rows))
	}
}

// GET /api/maintenance_expenses/truck/:truck_id
func ListMaintenanceExpensesByTruckHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		truckID, err := parseIDParam(c, "truck_id")
		if err != nil {
			return err
		}

		var rows []models.MaintenanceExpense
		if err := db.Preload("Truck").
			Where("truck_id = ?", truckID).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de manutenção não puderam ser listadas")
		}
		return c.JSON(maintenanceExpenseResponses(rows))
	}
}

// GET /api/maintenance_expenses/by-period?year=2025&month=3
func ListMaintenanceExpensesByPeriodHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return err
		}
		first, last := monthRange(year, month)

		var rows []models.MaintenanceExpense
		if err := db.Preload("Truck").
			Where("expense_date >= ? AND expense_date <= ?", first, last).
			Order("expense_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesas de manutenção não puderam ser listadas")
		}
		return c.JSON(maintenanceExpenseResponses(rows))
	}
}

// GET /api/maintenance_expenses/:id
func GetMaintenanceExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.MaintenanceExpense
		if err := db.Preload("Truck").First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(maintenanceExpenseResponse(exp))
	}
}

// PUT /api/maintenance_expenses/:id
func UpdateMaintenanceExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		var exp models.MaintenanceExpense
		if err := db.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}

		var body MaintenanceExpenseRequest
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
		exp.Amount = body.Amount.Float64()
		exp.Mileage = body.Mileage
		exp.Description = body.Description
		exp.ExpenseDate = d

		if err := db.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de manutenção não pôde ser atualizada")
		}
		return c.JSON(fiber.Map{"message": "Despesa de manutenção atualizada com sucesso"})
	}
}

// DELETE /api/maintenance_expenses/:id
func DeleteMaintenanceExpenseHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return err
		}

		res := db.Delete(&models.MaintenanceExpense{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Despesa de manutenção não pôde ser excluída")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Registro não encontrado")
		}
		return c.JSON(fiber.Map{"message": "Despesa de manutenção excluída com sucesso"})
	}
}
